package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/jabrena/cursor-agents-go/pkg/cursor"
)

// fakeAPI is an in-memory Cursor API used by the workflow tests. Agents
// advance one lifecycle step on every read, so pollers observe
// CREATING -> RUNNING -> FINISHED without real work happening.
type fakeAPI struct {
	mu       sync.Mutex
	apiKey   string
	agents   map[string]*agentRecord
	cursors  map[string]*cursor.Cursor
	sequence int
}

type agentRecord struct {
	agent    cursor.Agent
	messages []cursor.Message
}

func newFakeAPI(apiKey string) *fakeAPI {
	return &fakeAPI{
		apiKey:  apiKey,
		agents:  make(map[string]*agentRecord),
		cursors: make(map[string]*cursor.Cursor),
	}
}

func (f *fakeAPI) server() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/v0/agents", f.requireAuth(f.handleAgents))
	mux.HandleFunc("/v0/agents/", f.requireAuth(f.handleAgent))
	mux.HandleFunc("/cursors", f.requireAuth(f.handleCursors))
	mux.HandleFunc("/cursors/", f.requireAuth(f.handleCursor))

	return httptest.NewServer(mux)
}

func (f *fakeAPI) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+f.apiKey {
			writeAPIError(w, http.StatusUnauthorized, cursor.ErrorCodeUnauthorized, "invalid API key")

			return
		}

		next(w, r)
	}
}

func (f *fakeAPI) nextID(prefix string) string {
	f.sequence++

	return fmt.Sprintf("%s_%06d", prefix, f.sequence)
}

func (f *fakeAPI) handleAgents(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.Method {
	case http.MethodPost:
		var request cursor.LaunchAgentRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			writeAPIError(w, http.StatusBadRequest, cursor.ErrorCodeValidation, "malformed request body")

			return
		}

		if request.Prompt.Text == "" {
			writeAPIError(w, http.StatusBadRequest, cursor.ErrorCodeValidation, "prompt text is required")

			return
		}

		record := &agentRecord{
			agent: cursor.Agent{
				ID:        f.nextID("bc"),
				Name:      request.Prompt.Text,
				Status:    cursor.StatusCreating,
				Source:    request.Source,
				Target:    request.Target,
				CreatedAt: time.Now().UTC(),
			},
			messages: []cursor.Message{
				{ID: f.nextID("msg"), Type: "user_message", Text: request.Prompt.Text},
			},
		}
		f.agents[record.agent.ID] = record

		writeJSON(w, http.StatusOK, record.agent)
	case http.MethodGet:
		list := cursor.AgentList{Agents: []cursor.Agent{}}
		for _, record := range f.agents {
			list.Agents = append(list.Agents, record.agent)
		}

		writeJSON(w, http.StatusOK, list)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (f *fakeAPI) handleAgent(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	rest := strings.TrimPrefix(r.URL.Path, "/v0/agents/")
	agentID, action, _ := strings.Cut(rest, "/")

	record, ok := f.agents[agentID]
	if !ok {
		writeAPIError(w, http.StatusNotFound, cursor.ErrorCodeNotFound, "agent not found")

		return
	}

	switch {
	case action == "" && r.Method == http.MethodGet:
		f.advance(record)
		writeJSON(w, http.StatusOK, record.agent)
	case action == "" && r.Method == http.MethodDelete:
		delete(f.agents, agentID)
		writeJSON(w, http.StatusOK, cursor.DeleteAgentResponse{ID: agentID})
	case action == "follow-up" && r.Method == http.MethodPost:
		var request cursor.FollowUpRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			writeAPIError(w, http.StatusBadRequest, cursor.ErrorCodeValidation, "malformed request body")

			return
		}

		record.messages = append(record.messages, cursor.Message{
			ID:   f.nextID("msg"),
			Type: "user_message",
			Text: request.Prompt.Text,
		})

		writeJSON(w, http.StatusOK, cursor.FollowUpResponse{ID: agentID})
	case action == "conversation" && r.Method == http.MethodGet:
		writeJSON(w, http.StatusOK, cursor.Conversation{ID: agentID, Messages: record.messages})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// advance moves an agent one lifecycle step per read.
func (f *fakeAPI) advance(record *agentRecord) {
	switch record.agent.Status {
	case cursor.StatusCreating:
		record.agent.Status = cursor.StatusRunning
	case cursor.StatusRunning:
		record.agent.Status = cursor.StatusFinished
		record.agent.Summary = "All requested changes were applied"
		record.messages = append(record.messages, cursor.Message{
			ID:   f.nextID("msg"),
			Type: "assistant_message",
			Text: "Done. Opened a pull request with the changes.",
		})
	}
}

func (f *fakeAPI) handleCursors(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.Method {
	case http.MethodPost:
		var request cursor.CreateCursorRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			writeAPIError(w, http.StatusBadRequest, cursor.ErrorCodeValidation, "malformed request body")

			return
		}

		created := &cursor.Cursor{
			ID:        f.nextID("cur"),
			Name:      request.Name,
			Type:      request.Type,
			Position:  request.Position,
			Active:    request.Active,
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
		}
		f.cursors[created.ID] = created

		writeJSON(w, http.StatusCreated, created)
	case http.MethodGet:
		list := cursor.CursorList{Cursors: []cursor.Cursor{}}
		for _, item := range f.cursors {
			list.Cursors = append(list.Cursors, *item)
		}

		list.Pagination = cursor.Pagination{Page: 1, Limit: len(list.Cursors), Total: len(list.Cursors), TotalPages: 1}

		writeJSON(w, http.StatusOK, list)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (f *fakeAPI) handleCursor(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	rest := strings.TrimPrefix(r.URL.Path, "/cursors/")
	cursorID, action, _ := strings.Cut(rest, "/")

	item, ok := f.cursors[cursorID]
	if !ok {
		writeAPIError(w, http.StatusNotFound, cursor.ErrorCodeNotFound, "cursor not found")

		return
	}

	switch {
	case action == "" && r.Method == http.MethodGet:
		writeJSON(w, http.StatusOK, item)
	case action == "" && r.Method == http.MethodPut:
		var request cursor.UpdateCursorRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			writeAPIError(w, http.StatusBadRequest, cursor.ErrorCodeValidation, "malformed request body")

			return
		}

		if request.Name != nil {
			item.Name = *request.Name
		}

		if request.Position != nil {
			item.Position = *request.Position
		}

		if request.Active != nil {
			item.Active = *request.Active
		}

		item.UpdatedAt = time.Now().UTC()
		writeJSON(w, http.StatusOK, item)
	case action == "" && r.Method == http.MethodDelete:
		delete(f.cursors, cursorID)
		w.WriteHeader(http.StatusNoContent)
	case action == "move" && r.Method == http.MethodPost:
		var request cursor.MoveCursorRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			writeAPIError(w, http.StatusBadRequest, cursor.ErrorCodeValidation, "malformed request body")

			return
		}

		item.Position = request.Position
		item.UpdatedAt = time.Now().UTC()
		writeJSON(w, http.StatusOK, item)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, cursor.ResponseError{
		Err: cursor.APIError{Code: code, Message: message},
	})
}
