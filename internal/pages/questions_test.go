package pages

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rstracker/fete-cms/internal/backend"
	"github.com/rstracker/fete-cms/internal/session"
)

func newTestClient(t *testing.T, h http.Handler) *backend.Client {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)
	store := session.NewFileStore(filepath.Join(t.TempDir(), "token"))
	return backend.New(server.URL, time.Second, store)
}

func TestQuestionsPage_LoadSortsQuestionsAndChoices(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id":2,"questionText":"second","order":5,"choices":[
				{"id":21,"choiceText":"late","order":2},
				{"id":22,"choiceText":"early","order":1}
			]},
			{"id":1,"questionText":"first","order":1,"choices":[]}
		]`))
	}))

	p := NewQuestionsPage(backend.NewQuestionService(client))
	require.NoError(t, p.Load(context.Background()))

	assert.Equal(t, Success, p.State)
	require.Len(t, p.Questions, 2)
	assert.Equal(t, "first", p.Questions[0].QuestionText)
	assert.Equal(t, "second", p.Questions[1].QuestionText)
	require.Len(t, p.Questions[1].Choices, 2)
	assert.Equal(t, "early", p.Questions[1].Choices[0].ChoiceText)
}

func TestQuestionsPage_LoadErrorKeepsPreviousList(t *testing.T) {
	var fail atomic.Bool
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"status":500,"message":"backend down"}`))
			return
		}
		w.Write([]byte(`[{"id":1,"questionText":"kept","order":1,"choices":[]}]`))
	}))

	p := NewQuestionsPage(backend.NewQuestionService(client))
	ctx := context.Background()
	require.NoError(t, p.Load(ctx))

	fail.Store(true)
	require.Error(t, p.Load(ctx))

	assert.Equal(t, Error, p.State)
	assert.Equal(t, "backend down", p.Err)
	require.Len(t, p.Questions, 1, "failed reload keeps the previous list")
	assert.Equal(t, "kept", p.Questions[0].QuestionText)
}

func TestQuestionsPage_SetCategorySendsFilterUpstream(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}))

	p := NewQuestionsPage(backend.NewQuestionService(client))
	require.NoError(t, p.SetCategory(context.Background(), "TEMPERATURE_REFINE"))
	assert.Equal(t, "category=TEMPERATURE_REFINE", gotQuery)
}

func TestQuestionsPage_DeleteRefetches(t *testing.T) {
	var deleted atomic.Bool
	var listCalls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodDelete && r.URL.Path == "/questions/1":
			deleted.Store(true)
			w.WriteHeader(http.StatusNoContent)
		case r.Method == http.MethodGet && r.URL.Path == "/questions":
			listCalls.Add(1)
			if deleted.Load() {
				w.Write([]byte(`[]`))
			} else {
				w.Write([]byte(`[{"id":1,"questionText":"q","order":1,"choices":[]}]`))
			}
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))

	p := NewQuestionsPage(backend.NewQuestionService(client))
	ctx := context.Background()
	require.NoError(t, p.Load(ctx))
	require.Len(t, p.Questions, 1)

	require.NoError(t, p.Delete(ctx, 1))
	assert.Empty(t, p.Questions, "row disappears only via the refetched list")
	assert.Equal(t, int32(2), listCalls.Load())
}

func TestQuestionsPage_CreateModalLifecycle(t *testing.T) {
	var created atomic.Bool
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/questions":
			created.Store(true)
			w.Write([]byte(`{"id":7,"questionText":"fresh"}`))
		case r.Method == http.MethodGet && r.URL.Path == "/questions":
			if created.Load() {
				w.Write([]byte(`[{"id":7,"questionText":"fresh","order":1,"choices":[]}]`))
			} else {
				w.Write([]byte(`[]`))
			}
		}
	}))

	p := NewQuestionsPage(backend.NewQuestionService(client))
	ctx := context.Background()
	require.NoError(t, p.Load(ctx))

	modal := p.OpenCreate()
	modal.Form.QuestionText = "fresh"
	modal.Form.QuestionType = "SINGLE_CHOICE"
	modal.Form.Choices[0].ChoiceText = "Yes"
	modal.Form.Choices[0].ChoiceValue = "yes"

	require.NoError(t, modal.Submit(ctx))
	assert.Nil(t, p.Modal, "modal closes after a successful save")
	require.Len(t, p.Questions, 1)
	assert.Equal(t, "fresh", p.Questions[0].QuestionText)
}

func TestQuestionsPage_InvalidFormNeverHitsBackend(t *testing.T) {
	var requests atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Write([]byte(`[]`))
	}))

	p := NewQuestionsPage(backend.NewQuestionService(client))
	modal := p.OpenCreate()

	require.Error(t, modal.Submit(context.Background()))
	assert.NotNil(t, p.Modal, "modal stays open on validation failure")
	assert.Zero(t, requests.Load())
}
