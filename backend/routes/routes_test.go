package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"hakwon/backend/config"
	"hakwon/backend/notify"
	"hakwon/backend/store"
)

// newTestApp wires the full route table over a fixture-seeded memory store.
// Fixture cheat sheet: user 1 김민준 (member, tier 2, favorites 3+5),
// user 2 이서연 (admin, tier 3), user 3 박지훈 (guest, no tier); post 3 is
// flagged. Without an X-User-ID header user 1 is the viewer.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	st, err := store.NewMemoryStore()
	assert.NoError(t, err)

	cfg := &config.Config{ServerPort: "8080", DataBackend: "memory", CheckoutDelay: 0}
	app := fiber.New()
	SetupRoutes(app, st, cfg, notify.Nop{})
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target, userID string, body map[string]interface{}) (int, map[string]interface{}) {
	t.Helper()

	var req *http.Request
	if body != nil {
		data, _ := json.Marshal(body)
		req = httptest.NewRequest(method, target, bytes.NewBuffer(data))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

	resp, err := app.Test(req)
	assert.NoError(t, err)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp.StatusCode, result
}

func TestGetLessonsDefaultViewer(t *testing.T) {
	app := newTestApp(t)

	status, result := doRequest(t, app, "GET", "/api/lessons", "", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, result["success"])

	data := result["data"].(map[string]interface{})
	lessons := data["lessons"].([]interface{})
	assert.Len(t, lessons, 8)

	stats := data["stats"].(map[string]interface{})
	assert.Equal(t, float64(8), stats["total"])
}

func TestGetLessonsSearch(t *testing.T) {
	app := newTestApp(t)

	status, result := doRequest(t, app, "GET", "/api/lessons?search=TOPIK", "", nil)
	assert.Equal(t, fiber.StatusOK, status)

	lessons := result["data"].(map[string]interface{})["lessons"].([]interface{})
	assert.Len(t, lessons, 1)
	first := lessons[0].(map[string]interface{})
	assert.Equal(t, "TOPIK II 쓰기 전략", first["title"])
}

func TestGetLessonDetailLockedForGuest(t *testing.T) {
	app := newTestApp(t)

	// Lesson 5 requires the VIP tier; user 3 has no tier.
	status, result := doRequest(t, app, "GET", "/api/lessons/5", "3", nil)
	assert.Equal(t, fiber.StatusOK, status)

	data := result["data"].(map[string]interface{})
	assert.Equal(t, true, data["locked"])
	assert.Equal(t, "VIP", data["tier_name"])
}

func TestGetLessonDetailUnknownLesson(t *testing.T) {
	app := newTestApp(t)

	status, _ := doRequest(t, app, "GET", "/api/lessons/999", "", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestUpdateProgressUpserts(t *testing.T) {
	app := newTestApp(t)

	status, first := doRequest(t, app, "POST", "/api/lessons/2/progress", "", map[string]interface{}{
		"progress_pct": 60,
	})
	assert.Equal(t, fiber.StatusOK, status)
	firstData := first["data"].(map[string]interface{})
	assert.Equal(t, float64(60), firstData["progress_pct"])

	status, second := doRequest(t, app, "POST", "/api/lessons/2/progress", "", map[string]interface{}{
		"progress_pct": 100,
	})
	assert.Equal(t, fiber.StatusOK, status)
	secondData := second["data"].(map[string]interface{})
	assert.Equal(t, float64(100), secondData["progress_pct"])

	// The second write updated the first record, not created another.
	assert.Equal(t, firstData["Id"], secondData["Id"])
}

func TestUpdateProgressUnknownLesson(t *testing.T) {
	app := newTestApp(t)

	status, _ := doRequest(t, app, "POST", "/api/lessons/999/progress", "", map[string]interface{}{
		"progress_pct": 50,
	})
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestFavoriteToggle(t *testing.T) {
	app := newTestApp(t)

	status, _ := doRequest(t, app, "POST", "/api/lessons/2/favorite", "", nil)
	assert.Equal(t, fiber.StatusCreated, status)

	// User 1 already has lesson 3 favorited in the fixtures.
	status, _ = doRequest(t, app, "POST", "/api/lessons/3/favorite", "", nil)
	assert.Equal(t, fiber.StatusConflict, status)

	status, _ = doRequest(t, app, "DELETE", "/api/lessons/2/favorite", "", nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = doRequest(t, app, "DELETE", "/api/lessons/2/favorite", "", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestCommunityHidesFlaggedFromMembers(t *testing.T) {
	app := newTestApp(t)

	status, result := doRequest(t, app, "GET", "/api/community", "", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(3), result["total"])
	for _, raw := range result["data"].([]interface{}) {
		post := raw.(map[string]interface{})
		assert.Equal(t, false, post["has_flagged"])
	}

	status, result = doRequest(t, app, "GET", "/api/community", "2", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(4), result["total"])
}

func TestCommunityFlaggedModeAdminOnly(t *testing.T) {
	app := newTestApp(t)

	status, result := doRequest(t, app, "GET", "/api/community?sort=flagged", "2", nil)
	assert.Equal(t, fiber.StatusOK, status)
	posts := result["data"].([]interface{})
	assert.Len(t, posts, 1)

	status, result = doRequest(t, app, "GET", "/api/community?sort=flagged", "", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(0), result["total"])
}

func TestCreatePostValidation(t *testing.T) {
	app := newTestApp(t)

	status, _ := doRequest(t, app, "POST", "/api/community", "", map[string]interface{}{
		"title":   "",
		"content": "내용만 있는 글",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, result := doRequest(t, app, "POST", "/api/community", "", map[string]interface{}{
		"title":   "새 글",
		"content": "잘 부탁드립니다",
	})
	assert.Equal(t, fiber.StatusCreated, status)
	post := result["data"].(map[string]interface{})
	assert.Equal(t, "새 글", post["title"])
	assert.Equal(t, float64(1), post["user_id"])
}

func TestFlagPostRules(t *testing.T) {
	app := newTestApp(t)

	// Post 1 belongs to user 1, the default viewer.
	status, _ := doRequest(t, app, "POST", "/api/community/1/flag", "", map[string]interface{}{
		"reason": "테스트 신고",
	})
	assert.Equal(t, fiber.StatusForbidden, status)

	status, _ = doRequest(t, app, "POST", "/api/community/2/flag", "", map[string]interface{}{
		"reason": "",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, result := doRequest(t, app, "POST", "/api/community/2/flag", "", map[string]interface{}{
		"reason": "부적절한 내용",
	})
	assert.Equal(t, fiber.StatusOK, status)
	post := result["data"].(map[string]interface{})
	assert.Equal(t, true, post["has_flagged"])
}

func TestMembershipCheckout(t *testing.T) {
	app := newTestApp(t)

	// User 1 is on tier 2: re-purchasing it conflicts, upgrading works.
	status, _ := doRequest(t, app, "POST", "/api/membership/checkout", "", map[string]interface{}{
		"tier_id": 2,
	})
	assert.Equal(t, fiber.StatusConflict, status)

	status, result := doRequest(t, app, "POST", "/api/membership/checkout", "", map[string]interface{}{
		"tier_id": 3,
	})
	assert.Equal(t, fiber.StatusOK, status)
	user := result["data"].(map[string]interface{})
	assert.Equal(t, float64(3), user["tier_id"])

	// The retired beta plan cannot be purchased.
	status, _ = doRequest(t, app, "POST", "/api/membership/checkout", "3", map[string]interface{}{
		"tier_id": 4,
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestMembershipListsActiveTiers(t *testing.T) {
	app := newTestApp(t)

	status, result := doRequest(t, app, "GET", "/api/membership", "", nil)
	assert.Equal(t, fiber.StatusOK, status)

	data := result["data"].(map[string]interface{})
	tiers := data["tiers"].([]interface{})
	assert.Len(t, tiers, 3)

	current := data["current_tier"].(map[string]interface{})
	assert.Equal(t, "프리미엄", current["name"])
}

func TestAdminGate(t *testing.T) {
	app := newTestApp(t)

	status, _ := doRequest(t, app, "GET", "/api/admin/dashboard", "", nil)
	assert.Equal(t, fiber.StatusForbidden, status)

	status, result := doRequest(t, app, "GET", "/api/admin/dashboard", "2", nil)
	assert.Equal(t, fiber.StatusOK, status)

	data := result["data"].(map[string]interface{})
	stats := data["stats"].(map[string]interface{})
	assert.Equal(t, float64(4), stats["total_users"])
	assert.Equal(t, float64(1), stats["flagged_posts"])

	flagged := data["flagged_posts"].([]interface{})
	assert.Len(t, flagged, 1)
	first := flagged[0].(map[string]interface{})
	assert.Equal(t, "박지훈", first["author_name"])
}

func TestAdminModeration(t *testing.T) {
	app := newTestApp(t)

	status, result := doRequest(t, app, "POST", "/api/admin/posts/3/unflag", "2", nil)
	assert.Equal(t, fiber.StatusOK, status)
	post := result["data"].(map[string]interface{})
	assert.Equal(t, false, post["has_flagged"])

	status, _ = doRequest(t, app, "DELETE", "/api/admin/posts/3", "2", nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = doRequest(t, app, "DELETE", "/api/admin/posts/3", "2", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestAdminChangeUserRole(t *testing.T) {
	app := newTestApp(t)

	status, result := doRequest(t, app, "PUT", "/api/admin/users/3/role", "2", map[string]interface{}{
		"role": "member",
	})
	assert.Equal(t, fiber.StatusOK, status)
	user := result["data"].(map[string]interface{})
	assert.Equal(t, "member", user["role"])

	status, _ = doRequest(t, app, "PUT", "/api/admin/users/3/role", "2", map[string]interface{}{
		"role": "superuser",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestAdminLessonCRUD(t *testing.T) {
	app := newTestApp(t)

	status, result := doRequest(t, app, "POST", "/api/admin/lessons", "2", map[string]interface{}{
		"title":            "신규 레슨",
		"description":      "테스트용",
		"tier_required":    2,
		"duration_minutes": 15,
	})
	assert.Equal(t, fiber.StatusCreated, status)
	lesson := result["data"].(map[string]interface{})
	lessonID := strconv.Itoa(int(lesson["Id"].(float64)))

	status, result = doRequest(t, app, "PUT", "/api/admin/lessons/"+lessonID, "2", map[string]interface{}{
		"title": "수정된 레슨",
	})
	assert.Equal(t, fiber.StatusOK, status)
	updated := result["data"].(map[string]interface{})
	assert.Equal(t, "수정된 레슨", updated["title"])

	status, _ = doRequest(t, app, "DELETE", "/api/admin/lessons/"+lessonID, "2", nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = doRequest(t, app, "GET", "/api/lessons/"+lessonID, "2", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestUnknownViewerHeader(t *testing.T) {
	app := newTestApp(t)

	status, _ := doRequest(t, app, "GET", "/api/lessons", "999", nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = doRequest(t, app, "GET", "/api/lessons", "abc", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
}
