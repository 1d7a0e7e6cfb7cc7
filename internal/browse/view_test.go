package browse

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SiphoChris/afrilex/internal/domain"
)

func query(raw string) url.Values {
	q, _ := url.ParseQuery(raw)
	return q
}

func TestResolve_PromptWithoutLanguage(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "mode=native&letter=B", "lang=xx"} {
		res := Resolve(query(raw), Preferences{Mode: domain.ViewModeNative})

		assert.True(t, res.NeedsPrompt, raw)
		assert.False(t, res.NeedsRewrite, raw)
		assert.Empty(t, res.State, raw)
	}
}

func TestResolve_SeedsFromPreferences(t *testing.T) {
	t.Parallel()

	res := Resolve(query("letter=B"), Preferences{LanguageCode: "zu", Mode: domain.ViewModeNative})

	require.False(t, res.NeedsPrompt)
	assert.True(t, res.NeedsRewrite)
	assert.Equal(t, ViewState{LanguageCode: "zu", Mode: domain.ViewModeNative, Letter: "B"}, res.State)
	assert.Equal(t, "lang=zu&letter=B&mode=native", res.Canonical.Encode())
}

func TestResolve_URLWinsOverPreferences(t *testing.T) {
	t.Parallel()

	res := Resolve(query("lang=xh&mode=bilingual&letter=I"), Preferences{LanguageCode: "zu", Mode: domain.ViewModeNative})

	assert.False(t, res.NeedsRewrite)
	assert.Nil(t, res.Canonical)
	assert.Equal(t, ViewState{LanguageCode: "xh", Mode: domain.ViewModeBilingual, Letter: "I"}, res.State)
}

func TestResolve_Canonicalizes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want ViewState
	}{
		{"missing letter", "lang=xh&mode=native", ViewState{LanguageCode: "xh", Mode: domain.ViewModeNative, Letter: "A"}},
		{"lowercase letter", "lang=xh&mode=native&letter=i", ViewState{LanguageCode: "xh", Mode: domain.ViewModeNative, Letter: "I"}},
		{"bad letter", "lang=xh&mode=native&letter=12", ViewState{LanguageCode: "xh", Mode: domain.ViewModeNative, Letter: "A"}},
		{"region subtag", "lang=xh-ZA&mode=native&letter=A", ViewState{LanguageCode: "xh", Mode: domain.ViewModeNative, Letter: "A"}},
		{"missing mode", "lang=xh&letter=A", ViewState{LanguageCode: "xh", Mode: domain.ViewModeNative, Letter: "A"}},
		{"unknown mode", "lang=xh&mode=english&letter=A", ViewState{LanguageCode: "xh", Mode: domain.ViewModeNative, Letter: "A"}},
		{"padded term", "lang=xh&mode=native&letter=A&word=+nd+", ViewState{LanguageCode: "xh", Mode: domain.ViewModeNative, Letter: "A", Term: "nd"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := Resolve(query(tt.raw), Preferences{})

			assert.True(t, res.NeedsRewrite)
			assert.Equal(t, tt.want, res.State)
			assert.Equal(t, tt.want.Query(), res.Canonical)
		})
	}
}

func TestResolve_ModeDefaultsToNativeWithoutPreference(t *testing.T) {
	t.Parallel()

	res := Resolve(query(""), Preferences{LanguageCode: "zu"})

	assert.True(t, res.NeedsRewrite)
	assert.Equal(t, domain.ViewModeNative, res.State.Mode)
	assert.Equal(t, "native", res.Canonical.Get(ParamMode))
}

func TestResolve_TermAlreadyCanonical(t *testing.T) {
	t.Parallel()

	res := Resolve(query("lang=xh&mode=native&letter=A&word=nd"), Preferences{})

	assert.False(t, res.NeedsRewrite)
	assert.Equal(t, "nd", res.State.Term)
}

func TestResolver_ClampsTerm(t *testing.T) {
	t.Parallel()

	r := Resolver{MaxTermLength: 5}
	res := r.Resolve(query("lang=xh&mode=native&letter=A&word="+strings.Repeat("é", 8)), Preferences{})

	assert.True(t, res.NeedsRewrite)
	assert.Equal(t, strings.Repeat("é", 5), res.State.Term)
}
