package word

import (
	"context"
	"fmt"

	"github.com/SiphoChris/afrilex/internal/browse"
	"github.com/SiphoChris/afrilex/internal/domain"
)

// BrowseResult is one page of the public dictionary view.
type BrowseResult struct {
	State      browse.ViewState  `json:"state"`
	Dictionary domain.Dictionary `json:"dictionary"`
	Words      []domain.Word     `json:"words"`
	Total      int               `json:"total"`
}

// Browse lists the published words of a published dictionary that match
// the view's letter or search term.
func (s *Service) Browse(ctx context.Context, st browse.ViewState, limit, offset int) (BrowseResult, error) {
	dict, err := s.dictionaries.GetByLanguage(ctx, st.LanguageCode)
	if err != nil {
		return BrowseResult{}, err
	}
	if !dict.Metadata.IsPublished {
		return BrowseResult{}, domain.ErrNotFound
	}

	published := true
	filter := domain.WordFilter{
		LanguageCode: dict.LanguageCode,
		Search:       st.Term,
		Letter:       st.Letter,
		Published:    &published,
		Limit:        clampLimit(limit, s.browse.MaxPageSize, s.browse.PageSize),
		Offset:       max(offset, 0),
	}

	words, total, err := s.words.List(ctx, filter)
	if err != nil {
		return BrowseResult{}, fmt.Errorf("browse words: %w", err)
	}

	return BrowseResult{
		State:      st,
		Dictionary: dict,
		Words:      browse.FilterEntries(words, st.Letter, st.Term),
		Total:      total,
	}, nil
}

// Letters returns the letter bar of the browse view.
func (s *Service) Letters() []string {
	return browse.Letters()
}
