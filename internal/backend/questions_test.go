package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rstracker/fete-cms/internal/domain"
)

func TestQuestionService_ListDecodesBareArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/questions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		// No page envelope here; the endpoint returns the array directly.
		w.Write([]byte(`[{"id":1,"questionText":"How was it?","order":1,"choices":[]}]`))
	}))
	defer server.Close()

	svc := NewQuestionService(New(server.URL, time.Second, testStore(t)))
	questions, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "How was it?", questions[0].QuestionText)
}

func TestQuestionService_ListSendsCategory(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	svc := NewQuestionService(New(server.URL, time.Second, testStore(t)))
	_, err := svc.List(context.Background(), domain.CategoryTemperatureRefine)
	require.NoError(t, err)
	assert.Equal(t, "category=TEMPERATURE_REFINE", gotQuery)
}

func TestQuestionService_CreateSendsBody(t *testing.T) {
	var gotBody domain.CreateQuestionInput
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/questions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"id":5,"questionText":"New"}`))
	}))
	defer server.Close()

	svc := NewQuestionService(New(server.URL, time.Second, testStore(t)))
	created, err := svc.Create(context.Background(), domain.CreateQuestionInput{
		QuestionText:     "New",
		QuestionType:     "SINGLE_CHOICE",
		QuestionCategory: domain.CategoryInitialMatching,
		Order:            3,
		Choices: []domain.ChoiceInput{
			{ChoiceText: "Yes", ChoiceValue: "yes", Order: 1, TemperatureWeight: 0.5},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), created.ID)
	assert.Equal(t, "New", gotBody.QuestionText)
	require.Len(t, gotBody.Choices, 1)
	assert.Equal(t, "yes", gotBody.Choices[0].ChoiceValue)
}

func TestQuestionService_UpdateOmitsVersion(t *testing.T) {
	var raw map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/questions/5", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		w.Write([]byte(`{"id":5}`))
	}))
	defer server.Close()

	svc := NewQuestionService(New(server.URL, time.Second, testStore(t)))
	_, err := svc.Update(context.Background(), 5, domain.UpdateQuestionInput{
		QuestionText: "Edited",
		IsActive:     true,
	})
	require.NoError(t, err)
	assert.NotContains(t, raw, "version")
}

func TestQuestionService_Delete(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	svc := NewQuestionService(New(server.URL, time.Second, testStore(t)))
	require.NoError(t, svc.Delete(context.Background(), 9))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/questions/9", gotPath)
}
