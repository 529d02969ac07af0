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

func TestUserService_ListDecodesPageEnvelope(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{
			"content":[{"id":1,"userid":"alice","name":"Alice","phoneNumber":"010-1111-2222","status":"ACTIVE"}],
			"totalElements":41,"totalPages":3,"number":1,"size":20,"first":false,"last":false
		}`))
	}))
	defer server.Close()

	svc := NewUserService(New(server.URL, time.Second, testStore(t)))
	page, err := svc.List(context.Background(), 1, 20, "createdAt,desc")
	require.NoError(t, err)

	assert.Equal(t, "page=1&size=20&sort=createdAt%2Cdesc", gotQuery)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "alice", page.Content[0].Userid)
	assert.Equal(t, int64(41), page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
	assert.False(t, page.First)
}

func TestUserService_UpdateOmitsImmutableFields(t *testing.T) {
	var raw map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/users/3", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		w.Write([]byte(`{"id":3}`))
	}))
	defer server.Close()

	svc := NewUserService(New(server.URL, time.Second, testStore(t)))
	_, err := svc.Update(context.Background(), 3, domain.UpdateUserInput{
		Name:   "Renamed",
		Status: domain.UserActive,
	})
	require.NoError(t, err)
	assert.NotContains(t, raw, "userid")
	assert.NotContains(t, raw, "phoneNumber")
}

func TestUserService_CheckEndpoints(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/check/userid/alice":
			w.Write([]byte(`true`))
		case "/users/check/phone/010-1111-2222":
			w.Write([]byte(`false`))
		case "/users/check/email/a@b.co":
			w.Write([]byte(`false`))
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	svc := NewUserService(New(server.URL, time.Second, testStore(t)))
	ctx := context.Background()

	taken, err := svc.CheckUserid(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = svc.CheckPhoneNumber(ctx, "010-1111-2222")
	require.NoError(t, err)
	assert.False(t, taken)

	taken, err = svc.CheckEmail(ctx, "a@b.co")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestUserService_HistoryDecodesTimeline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/3/history", r.URL.Path)
		w.Write([]byte(`{
			"user":{"id":3,"userid":"alice"},
			"totalParticipations":2,
			"matchings":[
				{
					"matchingId":10,"matchingCode":"M-10","status":"COMPLETED","joinedAt":"2026-08-01T10:00:00",
					"record":{"recordId":"r-10","temperature":36.5,"temperatureDiff":0.3,"createdAt":"2026-08-01T11:00:00"},
					"otherParticipants":[{"participantCode":"P-2","joinedAt":"2026-08-01T10:05:00"}],
					"answers":[{"questionId":1,"questionText":"Q1","questionOrder":1,"choiceText":"Yes","choiceValue":"yes","answeredAt":"2026-08-01T10:10:00"}]
				},
				{
					"matchingId":11,"matchingCode":"M-11","status":"WAITING","joinedAt":"2026-08-02T10:00:00",
					"otherParticipants":[],"answers":[]
				}
			]
		}`))
	}))
	defer server.Close()

	svc := NewUserService(New(server.URL, time.Second, testStore(t)))
	history, err := svc.History(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, "alice", history.User.Userid)
	assert.Equal(t, 2, history.TotalParticipations)
	require.Len(t, history.Matchings, 2)

	completed := history.Matchings[0]
	require.NotNil(t, completed.Record)
	require.NotNil(t, completed.Record.Temperature)
	assert.InDelta(t, 36.5, *completed.Record.Temperature, 0.001)
	require.Len(t, completed.Answers, 1)
	assert.Equal(t, "yes", completed.Answers[0].ChoiceValue)

	// Temperature fields stay nil while the record is pending.
	pending := history.Matchings[1]
	assert.Nil(t, pending.Record)
}

func TestMatchingService_Paths(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/matching/create":
			w.Write([]byte(`{"id":1,"code":"M-1","status":"WAITING"}`))
		case r.Method == http.MethodPost && r.URL.Path == "/matching/join/M-1":
			w.Write([]byte(`{"participantCode":"P-2"}`))
		case r.Method == http.MethodGet && r.URL.Path == "/matching/status/M-1":
			w.Write([]byte(`{"code":"M-1","status":"ESTABLISHED","participantCount":2,"maxParticipants":2}`))
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	svc := NewMatchingService(New(server.URL, time.Second, testStore(t)))
	ctx := context.Background()

	m, err := svc.Create(ctx)
	require.NoError(t, err)
	assert.Equal(t, "M-1", m.Code)

	joined, err := svc.Join(ctx, "M-1")
	require.NoError(t, err)
	assert.Equal(t, "P-2", joined.ParticipantCode)

	status, err := svc.Status(ctx, "M-1")
	require.NoError(t, err)
	assert.Equal(t, domain.MatchingEstablished, status.Status)
}
