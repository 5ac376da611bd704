package httpserver

import (
	"net/http"
	"strings"
	"testing"

	identityentities "lexicon/contexts/identity-access/identity-service/domain/entities"
)

func TestCreateLanguageRequiresStaffRole(t *testing.T) {
	env := newTestEnv(Options{})
	contributor := env.signUp(t, "ana", "")

	rr := env.do(t, http.MethodPost, "/api/languages", contributor.Token, `{"name":"Spanish","code":"es"}`)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = env.do(t, http.MethodPost, "/api/languages", "", `{"name":"Spanish","code":"es"}`)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rr.Code)
	}
}

func TestCreateLanguageAllowsModeratorAndRejectsDuplicateCode(t *testing.T) {
	env := newTestEnv(Options{})
	moderator := env.signUp(t, "mod", identityentities.RoleModerator)

	env.createLanguage(t, moderator.Token, "es")
	rr := env.do(t, http.MethodPost, "/api/languages", moderator.Token, `{"name":"Spanish again","code":"ES"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate code, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = env.do(t, http.MethodGet, "/api/languages", "", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var languages []struct {
		Code string `json:"code"`
	}
	decodeBody(t, rr, &languages)
	if len(languages) != 1 || languages[0].Code != "es" {
		t.Fatalf("unexpected languages %+v", languages)
	}
}

func TestWordLifecycleRecordsContributions(t *testing.T) {
	env := newTestEnv(Options{})
	admin := env.signUp(t, "root", identityentities.RoleAdmin)
	es := env.createLanguage(t, admin.Token, "es")
	en := env.createLanguage(t, admin.Token, "en")
	author := env.signUp(t, "ana", "")

	rr := env.do(t, http.MethodPost, "/api/words", author.Token,
		`{"word":"hola","language_id":"`+es+`","meanings":[{"language_id":"`+en+`","meaning":"hello"}]}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("create word: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var word struct {
		ID             string `json:"id"`
		CreatedBy      string `json:"created_by"`
		LastModifiedBy string `json:"last_modified_by"`
	}
	decodeBody(t, rr, &word)
	if word.CreatedBy != author.ID || word.LastModifiedBy != author.ID {
		t.Fatalf("unexpected authorship %+v", word)
	}

	rr = env.do(t, http.MethodPut, "/api/words/"+word.ID, author.Token, `{"word":"Hola","note":"capitalised"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("update word: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = env.do(t, http.MethodGet, "/api/words/"+word.ID, "", "")
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `"word":"Hola"`) {
		t.Fatalf("expected updated word, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = env.do(t, http.MethodGet, "/api/users/me", author.Token, "")
	var profile struct {
		ContributionCount int `json:"contribution_count"`
		ContributorRank   int `json:"contributor_rank"`
	}
	decodeBody(t, rr, &profile)
	if profile.ContributionCount != 2 {
		t.Fatalf("expected 2 contributions, got %d", profile.ContributionCount)
	}
	if profile.ContributorRank != 1 {
		t.Fatalf("expected rank 1 after first contribution, got %d", profile.ContributorRank)
	}

	rr = env.do(t, http.MethodGet, "/api/user/"+author.ID+"/contributions", author.Token, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("list contributions: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var entries []struct {
		ContributionType string `json:"contribution_type"`
	}
	decodeBody(t, rr, &entries)
	if len(entries) != 2 || entries[0].ContributionType != "add" || entries[1].ContributionType != "edit" {
		t.Fatalf("unexpected contributions %+v", entries)
	}
	if !strings.Contains(rr.Body.String(), `"note":"capitalised"`) {
		t.Fatalf("expected edit details to keep the full payload, got %s", rr.Body.String())
	}
}

func TestRankAdvancesEveryTenContributions(t *testing.T) {
	env := newTestEnv(Options{})
	admin := env.signUp(t, "root", identityentities.RoleAdmin)
	es := env.createLanguage(t, admin.Token, "es")
	author := env.signUp(t, "ana", "")

	for i := 0; i < 11; i++ {
		rr := env.do(t, http.MethodPost, "/api/words", author.Token, `{"word":"palabra","language_id":"`+es+`","meanings":[]}`)
		if rr.Code != http.StatusOK {
			t.Fatalf("create word %d: expected 200, got %d body=%s", i, rr.Code, rr.Body.String())
		}
	}

	rr := env.do(t, http.MethodGet, "/api/users/me", author.Token, "")
	var profile struct {
		ContributionCount int `json:"contribution_count"`
		ContributorRank   int `json:"contributor_rank"`
	}
	decodeBody(t, rr, &profile)
	if profile.ContributionCount != 11 || profile.ContributorRank != 2 {
		t.Fatalf("expected count 11 rank 2, got %+v", profile)
	}
}

func TestCreateWordRejectsUnknownLanguage(t *testing.T) {
	env := newTestEnv(Options{})
	author := env.signUp(t, "ana", "")

	rr := env.do(t, http.MethodPost, "/api/words", author.Token, `{"word":"hola","language_id":"missing","meanings":[]}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestWordRoutesReturnNotFound(t *testing.T) {
	env := newTestEnv(Options{})
	author := env.signUp(t, "ana", "")

	rr := env.do(t, http.MethodGet, "/api/words/missing", "", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on get, got %d", rr.Code)
	}
	rr = env.do(t, http.MethodPut, "/api/words/missing", author.Token, `{"word":"x"}`)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on update, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestUpdateWordRequiresAuthentication(t *testing.T) {
	env := newTestEnv(Options{})
	rr := env.do(t, http.MethodPut, "/api/words/any", "", `{"word":"x"}`)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestSearchRequiresWord(t *testing.T) {
	env := newTestEnv(Options{})
	rr := env.do(t, http.MethodGet, "/api/search", "", "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestSearchFiltersMeaningsByTargetLanguage(t *testing.T) {
	env := newTestEnv(Options{})
	admin := env.signUp(t, "root", identityentities.RoleAdmin)
	es := env.createLanguage(t, admin.Token, "es")
	en := env.createLanguage(t, admin.Token, "en")
	fr := env.createLanguage(t, admin.Token, "fr")

	rr := env.do(t, http.MethodPost, "/api/words", admin.Token,
		`{"word":"Hola","language_id":"`+es+`","meanings":[{"language_id":"`+en+`","meaning":"hello"},{"language_id":"`+fr+`","meaning":"bonjour"}]}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("create word: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = env.do(t, http.MethodGet, "/api/search?word=ho&from_language="+es+"&to_language="+fr, "", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	body := rr.Body.String()
	if !strings.Contains(body, "bonjour") || strings.Contains(body, "hello") {
		t.Fatalf("expected only french meanings, got %s", body)
	}

	rr = env.do(t, http.MethodGet, "/api/words?search=OL", "", "")
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "Hola") {
		t.Fatalf("expected substring match, got %d body=%s", rr.Code, rr.Body.String())
	}
}
