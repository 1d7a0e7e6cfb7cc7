// Command seed creates a super admin, a published dictionary and a handful
// of sample words, then prints an access token for the admin. Re-running it
// is safe: existing dictionaries and words are left alone.
//
// Flags:
//
//	--language  language code of the dictionary to seed (default: xh)
//	--email     admin email; the admin's ID is derived from it
//	--name      admin display name
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/SiphoChris/afrilex/internal/adapter/postgres"
	audiorepo "github.com/SiphoChris/afrilex/internal/adapter/postgres/audio"
	auditrepo "github.com/SiphoChris/afrilex/internal/adapter/postgres/audit"
	dictionaryrepo "github.com/SiphoChris/afrilex/internal/adapter/postgres/dictionary"
	userrepo "github.com/SiphoChris/afrilex/internal/adapter/postgres/user"
	wordrepo "github.com/SiphoChris/afrilex/internal/adapter/postgres/word"
	"github.com/SiphoChris/afrilex/internal/app"
	"github.com/SiphoChris/afrilex/internal/auth"
	"github.com/SiphoChris/afrilex/internal/config"
	"github.com/SiphoChris/afrilex/internal/domain"
	"github.com/SiphoChris/afrilex/internal/draft"
	"github.com/SiphoChris/afrilex/internal/editor"
	"github.com/SiphoChris/afrilex/internal/service/dictionary"
	"github.com/SiphoChris/afrilex/internal/service/word"
	"github.com/SiphoChris/afrilex/internal/wordform"
	"github.com/SiphoChris/afrilex/pkg/ctxutil"
)

func main() {
	languageFlag := flag.String("language", "xh", "language code of the dictionary to seed")
	emailFlag := flag.String("email", "admin@afrilex.local", "admin email")
	nameFlag := flag.String("name", "AfriLex Admin", "admin display name")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	dictionaries := dictionaryrepo.New(pool)
	words := wordrepo.New(pool)
	audit := auditrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	admin, err := seedAdmin(ctx, users, *emailFlag, *nameFlag)
	if err != nil {
		logger.Error("seed admin", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx = ctxutil.WithUserID(ctx, admin.ID)
	ctx = ctxutil.WithUserRole(ctx, string(admin.Role))

	// Draft stores are unused here; the services only need them for sessions.
	dictionarySvc := dictionary.NewService(logger, dictionaries, words, audit, tx,
		draft.New[*editor.Editor](time.Minute, 1))
	wordSvc := word.NewService(logger, words, dictionaries, audiorepo.New(pool), audit, tx,
		draft.New[*wordform.Form](time.Minute, 1), cfg.Media, cfg.Browse)

	dict, err := seedDictionary(ctx, dictionarySvc, *languageFlag)
	if err != nil {
		logger.Error("seed dictionary", slog.String("error", err.Error()))
		os.Exit(1)
	}

	created, err := seedWords(ctx, wordSvc, dict.LanguageCode)
	if err != nil {
		logger.Error("seed words", slog.String("error", err.Error()))
		os.Exit(1)
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, 30*24*time.Hour)
	token, err := jwtManager.Issue(auth.Identity{
		UserID: admin.ID,
		Role:   string(admin.Role),
		Name:   admin.Name,
		Email:  admin.Email,
	})
	if err != nil {
		logger.Error("issue token", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seed completed",
		slog.String("admin_id", admin.ID.String()),
		slog.String("language", dict.LanguageCode),
		slog.Int("words_created", created),
	)
	fmt.Println(token)
}

type userStore interface {
	Touch(ctx context.Context, u domain.User) (domain.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (domain.User, error)
}

// seedAdmin upserts the super admin. The ID is derived from the email so
// repeated runs reuse the same account.
func seedAdmin(ctx context.Context, users userStore, email, name string) (domain.User, error) {
	now := time.Now().UTC()
	u, err := users.Touch(ctx, domain.User{
		ID:           uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+email)),
		Name:         name,
		Email:        email,
		Role:         domain.UserRoleSuperAdmin,
		LastActiveAt: now,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("touch: %w", err)
	}
	if u.Role == domain.UserRoleSuperAdmin {
		return u, nil
	}
	return users.UpdateRole(ctx, u.ID, domain.UserRoleSuperAdmin)
}

type dictionaryCreator interface {
	GetByLanguage(ctx context.Context, languageCode string) (domain.Dictionary, error)
	Create(ctx context.Context, d domain.Dictionary) (domain.Dictionary, error)
}

func seedDictionary(ctx context.Context, svc dictionaryCreator, languageCode string) (domain.Dictionary, error) {
	existing, err := svc.GetByLanguage(ctx, languageCode)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Dictionary{}, err
	}

	lang, ok := domain.LanguageByCode(languageCode)
	if !ok {
		return domain.Dictionary{}, fmt.Errorf("unsupported language %q", languageCode)
	}

	d := domain.NewDefaultDictionary(lang.Code)
	d.Name = domain.LabelPair{Native: "Isichazi-magama", Bilingual: lang.Name + " Dictionary"}
	d.Description = "Sample " + lang.Name + " dictionary"
	d.Metadata.IsPublished = true
	d.Metadata.AllowContributions = true
	return svc.Create(ctx, d)
}

type wordCreator interface {
	List(ctx context.Context, filter domain.WordFilter) ([]domain.Word, int, error)
	Create(ctx context.Context, w domain.Word) (domain.Word, error)
	SetPublished(ctx context.Context, id uuid.UUID, published bool) (domain.Word, error)
}

// seedWords creates the sample words missing from the dictionary and
// publishes them. Samples are only defined for isiXhosa.
func seedWords(ctx context.Context, svc wordCreator, languageCode string) (int, error) {
	if languageCode != "xh" {
		return 0, nil
	}

	created := 0
	for _, w := range xhosaSamples() {
		existing, _, err := svc.List(ctx, domain.WordFilter{LanguageCode: languageCode, Search: w.Word, Limit: 50})
		if err != nil {
			return created, fmt.Errorf("list %q: %w", w.Word, err)
		}
		if containsWord(existing, w.Word) {
			continue
		}

		saved, err := svc.Create(ctx, w)
		if err != nil {
			return created, fmt.Errorf("create %q: %w", w.Word, err)
		}
		if _, err := svc.SetPublished(ctx, saved.ID, true); err != nil {
			return created, fmt.Errorf("publish %q: %w", w.Word, err)
		}
		created++
	}
	return created, nil
}

func containsWord(words []domain.Word, text string) bool {
	for _, w := range words {
		if w.Word == text {
			return true
		}
	}
	return false
}
