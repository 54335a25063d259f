package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/roster/internal/directory"
	"github.com/rshade/roster/internal/employee"
	"github.com/rshade/roster/internal/roster"
)

// slowDirectory serves pages of ten users after delay. Odd IDs live in the
// United States, even IDs in India.
func slowDirectory(t *testing.T, delay time.Duration, hits *atomic.Int32) *directory.Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		time.Sleep(delay)
		skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
		users := make([]map[string]any, 0, directory.PageSize)
		for id := skip + 1; id <= skip+directory.PageSize; id++ {
			country := "India"
			if id%2 == 1 {
				country = "United States"
			}
			users = append(users, map[string]any{
				"id":        id,
				"firstName": fmt.Sprintf("First%d", id),
				"lastName":  "Tester",
				"age":       20 + id,
				"gender":    "male",
				"address":   map[string]any{"country": country},
			})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"users": users})
	}))
	t.Cleanup(server.Close)

	c, err := directory.NewClient(directory.Options{BaseURL: server.URL, Timeout: 2 * time.Second})
	require.NoError(t, err)
	return c
}

// pageMessages keeps only page outcomes from the messages cmd produces.
func pageMessages(cmd tea.Cmd) []PageFetchedMsg {
	var out []PageFetchedMsg
	for _, msg := range collect(cmd) {
		if page, ok := msg.(PageFetchedMsg); ok {
			out = append(out, page)
		}
	}
	return out
}

func TestEmployeesModel_FilterChangeDuringFirstLoadWithClient(t *testing.T) {
	var hits atomic.Int32
	client := slowDirectory(t, 100*time.Millisecond, &hits)
	m := NewEmployeesModel(context.Background(), client, EmployeesOptions{})

	initial := make(chan []PageFetchedMsg, 1)
	initCmd := m.Init()
	go func() { initial <- pageMessages(initCmd) }()
	require.Eventually(t, func() bool { return hits.Load() >= 1 }, time.Second, 5*time.Millisecond)

	restart := pageMessages(send(m, keyRune('c')))
	require.Len(t, restart, 1)
	_, isLoaded := restart[0].Event.(roster.PageLoaded)
	require.True(t, isLoaded, "restarted first page must load, got %#v", restart[0].Event)
	_ = send(m, restart[0])

	for _, stale := range <-initial {
		_ = send(m, stale)
	}

	state := m.State()
	assert.NotEqual(t, roster.PhaseError, state.Phase)
	assert.Equal(t, employee.DefaultCountries[0], state.Filter.Country)
	assert.Equal(t, []int{1, 3, 5, 7, 9}, displayedIDs(m))
}
