package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"taskboard.com/taskboard/internal/dto"
	model "taskboard.com/taskboard/internal/models"
	"taskboard.com/taskboard/internal/ratelimit"
	repository "taskboard.com/taskboard/internal/repositories"
	"taskboard.com/taskboard/internal/services"
)

func setupServer(t *testing.T, limiter ratelimit.Limiter) *echo.Echo {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&model.User{},
		&model.Team{},
		&model.TeamMember{},
		&model.PrivateBoard{},
		&model.TeamBoard{},
		&model.List{},
		&model.Task{},
		&model.Milestone{},
		&model.Log{},
		&model.Timer{},
	)
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	users := repository.NewUserRepository(db)
	teams := repository.NewTeamRepository(db)
	boards := repository.NewBoardRepository(db)
	lists := repository.NewListRepository(db)
	tasks := repository.NewTaskRepository(db)
	milestones := repository.NewMilestoneRepository(db)
	logs := repository.NewLogRepository(db)
	timers := repository.NewTimerRepository(db)

	auth := services.NewAuthService(users, "test-secret", time.Hour)
	handler := NewHandler(
		auth,
		services.NewTeamService(teams, users),
		services.NewBoardService(boards, teams, users),
		services.NewListService(lists),
		services.NewTaskService(tasks, logs),
		services.NewMilestoneService(milestones, lists, tasks),
		services.NewTimerService(timers, users),
	)

	e := echo.New()
	Register(e, handler, auth.VerifyToken, limiter)
	return e
}

func do(t *testing.T, e *echo.Echo, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var payload *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		payload = bytes.NewBuffer(raw)
	} else {
		payload = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, payload)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, e *echo.Echo, username string) string {
	creds := dto.Credentials{Username: username, Password: "pw"}

	rec := do(t, e, http.MethodPost, "/register", "", creds)
	if rec.Code != http.StatusOK {
		t.Fatalf("register returned %d: %s", rec.Code, rec.Body.String())
	}

	rec = do(t, e, http.MethodPost, "/login", "", creds)
	if rec.Code != http.StatusOK {
		t.Fatalf("login returned %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.TokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}
	if !resp.Success || resp.Token == "" {
		t.Fatalf("login did not return a token: %s", rec.Body.String())
	}
	return resp.Token
}

func TestPrivateBoardFlow(t *testing.T) {
	e := setupServer(t, ratelimit.NewMemoryLimiter(1000, time.Minute))
	token := login(t, e, "u1")

	rec := do(t, e, http.MethodGet, "/private_board/get", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("board list returned %d: %s", rec.Code, rec.Body.String())
	}
	var boards []model.PrivateBoard
	if err := json.Unmarshal(rec.Body.Bytes(), &boards); err != nil {
		t.Fatalf("failed to decode boards: %v", err)
	}
	if len(boards) != 0 {
		t.Fatalf("expected no boards yet, got %d", len(boards))
	}

	rec = do(t, e, http.MethodPost, "/private_board/create", token, dto.PrivateBoardData{Name: "inbox"})
	if rec.Code != http.StatusOK {
		t.Fatalf("board create returned %d: %s", rec.Code, rec.Body.String())
	}

	rec = do(t, e, http.MethodGet, "/private_board/get", token, nil)
	if err := json.Unmarshal(rec.Body.Bytes(), &boards); err != nil {
		t.Fatalf("failed to decode boards: %v", err)
	}
	if len(boards) != 1 || boards[0].Name != "inbox" {
		t.Fatalf("expected the inbox board, got %+v", boards)
	}

	rec = do(t, e, http.MethodGet, "/private/delete/"+boards[0].ID, token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("board delete returned %d: %s", rec.Code, rec.Body.String())
	}
	rec = do(t, e, http.MethodGet, "/private_board/get", token, nil)
	if err := json.Unmarshal(rec.Body.Bytes(), &boards); err != nil {
		t.Fatalf("failed to decode boards: %v", err)
	}
	if len(boards) != 0 {
		t.Fatalf("expected no boards after delete, got %d", len(boards))
	}
}

func TestAuthenticatedRoutesRejectMissingToken(t *testing.T) {
	e := setupServer(t, ratelimit.NewMemoryLimiter(1000, time.Minute))

	for _, path := range []string{"/private_board/get", "/timers/get", "/owned"} {
		rec := do(t, e, http.MethodGet, path, "", nil)
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s without token returned %d, want 404", path, rec.Code)
		}
	}

	rec := do(t, e, http.MethodGet, "/private_board/get", "not-a-token", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("bad token returned %d, want 404", rec.Code)
	}
}

func TestMissingRowsReadAsNotFound(t *testing.T) {
	e := setupServer(t, ratelimit.NewMemoryLimiter(1000, time.Minute))
	token := login(t, e, "u1")

	for _, path := range []string{
		"/task/no-such-id",
		"/timer/update/no-such-id",
		"/list_delete/no-such-id",
		"/private/delete/no-such-id",
	} {
		rec := do(t, e, http.MethodGet, path, token, nil)
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s returned %d, want 404", path, rec.Code)
		}
	}
}

func TestValidatorsRejectIncompletePayloads(t *testing.T) {
	e := setupServer(t, ratelimit.NewMemoryLimiter(1000, time.Minute))

	rec := do(t, e, http.MethodPost, "/register", "", map[string]string{"username": "u1"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("register without password returned %d, want 400", rec.Code)
	}

	token := login(t, e, "u1")
	rec = do(t, e, http.MethodPost, "/task/create", token, map[string]string{"name": "no list"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("task without list returned %d, want 400", rec.Code)
	}
	rec = do(t, e, http.MethodPost, "/new_list", token, map[string]string{
		"name":       "L",
		"board":      "b",
		"board_type": "shared",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("list with unknown board type returned %d, want 400", rec.Code)
	}
}

func TestTaskLifecycleOverHTTP(t *testing.T) {
	e := setupServer(t, ratelimit.NewMemoryLimiter(1000, time.Minute))
	token := login(t, e, "u1")

	rec := do(t, e, http.MethodPost, "/private_board/create", token, dto.PrivateBoardData{Name: "B"})
	if rec.Code != http.StatusOK {
		t.Fatalf("board create returned %d", rec.Code)
	}
	var boards []model.PrivateBoard
	rec = do(t, e, http.MethodGet, "/private_board/get", token, nil)
	if err := json.Unmarshal(rec.Body.Bytes(), &boards); err != nil || len(boards) != 1 {
		t.Fatalf("failed to read board back: %v", err)
	}

	list := model.List{Name: "todo", Board: boards[0].ID, BoardType: model.BoardPrivate}
	rec = do(t, e, http.MethodPost, "/new_list", token, list)
	if rec.Code != http.StatusOK {
		t.Fatalf("list create returned %d: %s", rec.Code, rec.Body.String())
	}
	var lists []model.List
	rec = do(t, e, http.MethodGet, "/list/private/"+boards[0].ID, token, nil)
	if err := json.Unmarshal(rec.Body.Bytes(), &lists); err != nil || len(lists) != 1 {
		t.Fatalf("failed to read list back: %v (%s)", err, rec.Body.String())
	}

	task := model.Task{Name: "write docs", List: lists[0].ID}
	rec = do(t, e, http.MethodPost, "/task/create", token, task)
	if rec.Code != http.StatusOK {
		t.Fatalf("task create returned %d: %s", rec.Code, rec.Body.String())
	}

	var tasks []model.Task
	rec = do(t, e, http.MethodGet, "/task/get/"+lists[0].ID, token, nil)
	if err := json.Unmarshal(rec.Body.Bytes(), &tasks); err != nil || len(tasks) != 1 {
		t.Fatalf("failed to read task back: %v (%s)", err, rec.Body.String())
	}

	rec = do(t, e, http.MethodPost, "/task/get/"+lists[0].ID, token, model.TaskFilter{Name: "docs"})
	if rec.Code != http.StatusOK {
		t.Fatalf("task filter returned %d: %s", rec.Code, rec.Body.String())
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &tasks); err != nil || len(tasks) != 1 {
		t.Fatalf("filter should match the task: %v (%s)", err, rec.Body.String())
	}

	var logs []model.Log
	rec = do(t, e, http.MethodGet, "/logs/get/"+tasks[0].ID, token, nil)
	if err := json.Unmarshal(rec.Body.Bytes(), &logs); err != nil || len(logs) != 1 {
		t.Fatalf("expected one audit entry: %v (%s)", err, rec.Body.String())
	}
	if logs[0].Action != model.LogActionCreated {
		t.Errorf("expected a created entry, got %s", logs[0].Action)
	}
}

func TestRateLimiterReturns429(t *testing.T) {
	e := setupServer(t, ratelimit.NewMemoryLimiter(2, time.Minute))
	creds := dto.Credentials{Username: "u1", Password: "pw"}

	for i := 0; i < 2; i++ {
		rec := do(t, e, http.MethodPost, "/register", "", dto.Credentials{
			Username: creds.Username + string(rune('a'+i)),
			Password: creds.Password,
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d returned %d", i+1, rec.Code)
		}
	}

	rec := do(t, e, http.MethodPost, "/register", "", creds)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429 once over the limit, got %d", rec.Code)
	}
}
