package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/roster/internal/employee"
)

func usersPage(start, n int) map[string]any {
	users := make([]map[string]any, 0, n)
	for i := 0; i < n; i++ {
		id := start + i
		users = append(users, map[string]any{
			"id":        id,
			"firstName": fmt.Sprintf("First%d", id),
			"lastName":  fmt.Sprintf("Last%d", id),
			"age":       20 + id,
			"gender":    "female",
			"company":   map[string]any{"title": "Engineer"},
			"address":   map[string]any{"city": "Phoenix", "state": "Arizona", "country": "United States"},
			"image":     fmt.Sprintf("https://img.example/%d.png", id),
		})
	}
	return map[string]any{"users": users, "total": 100, "skip": start - 1, "limit": PageSize}
}

func newTestClient(t *testing.T, handler http.HandlerFunc, retries int) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := NewClient(Options{BaseURL: server.URL + "/", Timeout: 2 * time.Second, RetryCount: retries, UserAgent: "roster-test"})
	require.NoError(t, err)
	return c
}

func TestNewClient(t *testing.T) {
	_, err := NewClient(Options{})
	require.Error(t, err)

	c, err := NewClient(Options{BaseURL: "https://dummyjson.com/"})
	require.NoError(t, err)
	assert.Equal(t, "https://dummyjson.com", c.BaseURL())
}

func TestPageQuery(t *testing.T) {
	q := PageQuery(3)
	assert.Equal(t, "10", q["limit"])
	assert.Equal(t, "30", q["skip"])
	assert.Equal(t, "firstName,lastName,age,gender,company,address,image", q["select"])
}

func TestFetchPage_Success(t *testing.T) {
	var gotQuery, gotUA string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users", r.URL.Path)
		gotQuery = r.URL.RawQuery
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(usersPage(11, PageSize))
	}, 0)

	users, err := c.FetchPage(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, users, PageSize)
	assert.Contains(t, gotQuery, "skip=10")
	assert.Contains(t, gotQuery, "limit=10")
	assert.Equal(t, "roster-test", gotUA)

	rec := users[0].Record()
	assert.Equal(t, employee.Record{
		ID:          11,
		FullName:    "First11 Last11",
		Demography:  "F/31",
		Designation: "Engineer",
		Location:    "Phoenix, Arizona",
		Country:     "United States",
		Gender:      employee.GenderFemale,
		Age:         31,
		ImageURL:    "https://img.example/11.png",
	}, rec)
}

func TestFetchPage_EmptyPage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"users":[],"total":0,"skip":0,"limit":10}`))
	}, 0)

	users, err := c.FetchPage(context.Background(), 20)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestFetchPage_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"users": [`))
			},
		},
		{
			name: "missing users field",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"message":"nope"}`))
			},
		},
		{
			name: "not json",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "text/html")
				_, _ = w.Write([]byte(`<html></html>`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.handler, 0)
			users, err := c.FetchPage(context.Background(), 0)
			require.ErrorIs(t, err, ErrFetchFailure)
			assert.Nil(t, users)
		})
	}
}

func TestFetchPage_NoRetryByDefault(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}, 0)

	_, err := c.FetchPage(context.Background(), 0)
	require.ErrorIs(t, err, ErrFetchFailure)
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetchPage_RetriesWhenConfigured(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(usersPage(1, 2))
	}, 3)

	users, err := c.FetchPage(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, int32(3), calls.Load())
}

func TestFetchPage_CancelledContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(usersPage(1, 1))
	}, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.FetchPage(ctx, 0)
	require.ErrorIs(t, err, ErrFetchFailure)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetchPage_NegativePage(t *testing.T) {
	c, err := NewClient(Options{BaseURL: "http://127.0.0.1:1"})
	require.NoError(t, err)

	_, err = c.FetchPage(context.Background(), -1)
	require.ErrorIs(t, err, ErrFetchFailure)
}

func TestUserRecord_UnknownGender(t *testing.T) {
	u := User{ID: 7, FirstName: "Sam", Gender: "other", Age: 40}
	r := u.Record()

	assert.Equal(t, employee.Gender("other"), r.Gender)
	assert.Equal(t, "?/40", r.Demography)
	assert.False(t, employee.Filter{Gender: employee.GenderMale}.Matches(r))
	assert.True(t, employee.Filter{}.Matches(r))
}

func TestRecords(t *testing.T) {
	users := []User{{ID: 1}, {ID: 2}}
	recs := Records(users)
	require.Len(t, recs, 2)
	assert.Equal(t, 2, recs[1].ID)
}

func TestFetchRecords(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(usersPage(1, 3))
	}, 0)

	recs, err := c.FetchRecords(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "First1 Last1", recs[0].FullName)

	failing := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}, 0)
	recs, err = failing.FetchRecords(context.Background(), 0)
	require.ErrorIs(t, err, ErrFetchFailure)
	assert.Nil(t, recs)
}

func TestFetchPage_CoalescesConcurrentRequests(t *testing.T) {
	var hits atomic.Int32
	arrived := make(chan struct{}, 1)
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		arrived <- struct{}{}
		<-release
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(usersPage(1, 3))
	}, 0)

	type result struct {
		users []User
		err   error
	}
	results := make(chan result, 2)
	fetch := func() {
		users, err := c.FetchPage(context.Background(), 0)
		results <- result{users, err}
	}

	go fetch()
	<-arrived
	go fetch()
	time.Sleep(50 * time.Millisecond)
	close(release)

	for range 2 {
		r := <-results
		require.NoError(t, r.err)
		assert.Len(t, r.users, 3)
	}
	assert.Equal(t, int32(1), hits.Load())
}

func slowUsersHandler(delay time.Duration, hits *atomic.Int32) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		time.Sleep(delay)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(usersPage(1, 2))
	}
}

func TestFetchPage_CancelledCallerDoesNotFailRefetch(t *testing.T) {
	var hits atomic.Int32
	c := newTestClient(t, slowUsersHandler(100*time.Millisecond, &hits), 0)

	ctxA, cancelA := context.WithCancel(context.Background())
	errA := make(chan error, 1)
	go func() {
		_, err := c.FetchPage(ctxA, 0)
		errA <- err
	}()

	require.Eventually(t, func() bool { return hits.Load() == 1 }, time.Second, 5*time.Millisecond)
	cancelA()

	users, err := c.FetchPage(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	err = <-errA
	require.ErrorIs(t, err, ErrFetchFailure)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetchPage_LiveCallerSurvivesCancelledJoiner(t *testing.T) {
	var hits atomic.Int32
	c := newTestClient(t, slowUsersHandler(100*time.Millisecond, &hits), 0)

	live := make(chan error, 1)
	go func() {
		_, err := c.FetchPage(context.Background(), 0)
		live <- err
	}()
	require.Eventually(t, func() bool { return hits.Load() == 1 }, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := c.FetchPage(ctx, 0)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, <-live)
	assert.Equal(t, int32(1), hits.Load())
}
