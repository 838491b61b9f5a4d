package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mataraung/trip-api/internal/config"
	"github.com/mataraung/trip-api/internal/server"
)

// envelope is the standard API response wrapper
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func decodeData(t *testing.T, resp *http.Response, dest interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	if dest != nil && len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, dest))
	}
	return env
}

func TestGoldenPath(t *testing.T) {
	// 1. Setup Infrastructure
	db, cleanupDB := SetupTestDB(t)
	defer cleanupDB()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	// Minimal config; S3 points nowhere so media uploads degrade to 503
	cfg := &config.Config{}
	cfg.Server.MaxUploadSizeMB = 10
	cfg.S3.Endpoint = "http://127.0.0.1:1"
	cfg.S3.Bucket = "test-media"
	cfg.S3.Region = "us-east-1"

	// 2. Initialize App
	app := server.NewApp(server.AppDependencies{
		Config:      cfg,
		MongoDB:     db,
		RedisClient: redisClient,
	})

	request := func(method, path string, body interface{}, headers map[string]string) *http.Response {
		var bodyReader io.Reader
		if body != nil {
			jsonBytes, _ := json.Marshal(body)
			bodyReader = bytes.NewReader(jsonBytes)
		}
		req, _ := http.NewRequest(method, path, bodyReader)
		req.Header.Set("Content-Type", "application/json")
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp
	}

	// ==========================================
	// STEP 1: Admin creates a trip package
	// ==========================================
	resp := request("POST", "/v1/admin/packages", map[string]interface{}{
		"name":        "Raja Ampat Explorer",
		"description": "4 hari menjelajahi Raja Ampat",
		"location":    "Papua Barat",
		"price":       100000,
		"duration":    "4 hari 3 malam",
		"max_people":  12,
	}, nil)
	assert.Equal(t, 201, resp.StatusCode)

	var pkg map[string]interface{}
	decodeData(t, resp, &pkg)
	packageID := pkg["id"].(string)
	require.NotEmpty(t, packageID)
	assert.Equal(t, "ACTIVE", pkg["status"])

	fmt.Println("✓ Package Created:", packageID)

	// ==========================================
	// STEP 2: Public site lists active packages
	// ==========================================
	resp = request("GET", "/v1/packages", nil, nil)
	assert.Equal(t, 200, resp.StatusCode)

	var publicPackages []map[string]interface{}
	decodeData(t, resp, &publicPackages)
	require.Len(t, publicPackages, 1)
	assert.Equal(t, "Raja Ampat Explorer", publicPackages[0]["name"])

	// ==========================================
	// STEP 3: Customer submits a booking
	// ==========================================
	bookingBody := map[string]interface{}{
		"customer_name": "Budi Santoso",
		"whatsapp":      "081234567890",
		"people":        3,
		"package_id":    packageID,
		"trip_date":     "2026-10-10",
		"notes":         "Vegetarian",
	}
	resp = request("POST", "/v1/bookings", bookingBody, map[string]string{
		"X-Correlation-ID": "booking-abc-123",
	})
	assert.Equal(t, 201, resp.StatusCode)

	var booking map[string]interface{}
	decodeData(t, resp, &booking)
	bookingID := booking["id"].(string)
	require.NotEmpty(t, bookingID)
	assert.Equal(t, "PENDING", booking["status"])
	assert.EqualValues(t, 300000, booking["total_price"])

	fmt.Println("✓ Booking Created:", bookingID)

	// ==========================================
	// STEP 4: Retry with the same correlation ID replays, no duplicate
	// ==========================================
	// The response cache write is asynchronous; give it a moment
	time.Sleep(200 * time.Millisecond)

	resp = request("POST", "/v1/bookings", bookingBody, map[string]string{
		"X-Correlation-ID": "booking-abc-123",
	})
	assert.Equal(t, 201, resp.StatusCode)
	assert.Equal(t, "true", resp.Header.Get("X-Idempotent-Replay"))

	var replayed map[string]interface{}
	decodeData(t, resp, &replayed)
	assert.Equal(t, bookingID, replayed["id"])

	resp = request("GET", "/v1/admin/bookings", nil, nil)
	assert.Equal(t, 200, resp.StatusCode)
	var bookings []map[string]interface{}
	decodeData(t, resp, &bookings)
	assert.Len(t, bookings, 1)

	fmt.Println("✓ Idempotent Replay Verified")

	// ==========================================
	// STEP 5: Price change after booking never touches the snapshot
	// ==========================================
	resp = request("PUT", "/v1/admin/packages/"+packageID, map[string]interface{}{
		"name":       "Raja Ampat Explorer",
		"location":   "Papua Barat",
		"price":      250000,
		"duration":   "4 hari 3 malam",
		"max_people": 12,
		"status":     "ACTIVE",
	}, nil)
	assert.Equal(t, 200, resp.StatusCode)

	resp = request("GET", "/v1/admin/bookings/"+bookingID, nil, nil)
	assert.Equal(t, 200, resp.StatusCode)
	decodeData(t, resp, &booking)
	assert.EqualValues(t, 300000, booking["total_price"])

	fmt.Println("✓ Price Snapshot Verified")

	// ==========================================
	// STEP 6: Admin approves the booking
	// ==========================================
	// No link before the booking is confirmed
	resp = request("GET", "/v1/admin/bookings/"+bookingID+"/whatsapp-link", nil, nil)
	assert.Equal(t, 400, resp.StatusCode)

	resp = request("POST", "/v1/admin/bookings/"+bookingID+"/approve", nil, nil)
	assert.Equal(t, 200, resp.StatusCode)

	var approval struct {
		Booking      map[string]interface{} `json:"booking"`
		WhatsappLink string                 `json:"whatsapp_link"`
	}
	decodeData(t, resp, &approval)
	assert.Equal(t, "CONFIRMED", approval.Booking["status"])
	assert.True(t, strings.HasPrefix(approval.WhatsappLink, "https://wa.me/6281234567890?text="), approval.WhatsappLink)
	assert.Contains(t, approval.WhatsappLink, "Budi")

	// Approving again is a harmless rewrite
	resp = request("POST", "/v1/admin/bookings/"+bookingID+"/approve", nil, nil)
	assert.Equal(t, 200, resp.StatusCode)

	// The dashboard can regenerate the link for a confirmed booking at any time
	resp = request("GET", "/v1/admin/bookings/"+bookingID+"/whatsapp-link", nil, nil)
	assert.Equal(t, 200, resp.StatusCode)
	var linkBody struct {
		WhatsappLink string `json:"whatsapp_link"`
	}
	decodeData(t, resp, &linkBody)
	assert.True(t, strings.HasPrefix(linkBody.WhatsappLink, "https://wa.me/6281234567890?text="), linkBody.WhatsappLink)

	fmt.Println("✓ Booking Approved, WhatsApp Link Verified")

	// ==========================================
	// STEP 7: Booking stats
	// ==========================================
	resp = request("GET", "/v1/admin/bookings/stats", nil, nil)
	assert.Equal(t, 200, resp.StatusCode)

	var stats map[string]interface{}
	decodeData(t, resp, &stats)
	assert.EqualValues(t, 1, stats["total"])
	assert.EqualValues(t, 1, stats["confirmed"])
	assert.EqualValues(t, 0, stats["pending"])

	// ==========================================
	// STEP 8: Team member and blog post
	// ==========================================
	resp = request("POST", "/v1/admin/team", map[string]interface{}{
		"name":           "Andi Wijaya",
		"role":           "Lead Guide",
		"specialization": "Diving",
		"rating":         4.8,
	}, nil)
	assert.Equal(t, 201, resp.StatusCode)

	var member map[string]interface{}
	decodeData(t, resp, &member)
	memberID := member["id"].(string)

	resp = request("POST", "/v1/admin/blog", map[string]interface{}{
		"title":     "Tips Snorkeling di Raja Ampat",
		"slug":      "tips-snorkeling-raja-ampat",
		"excerpt":   "Persiapan sebelum menyelam",
		"content":   "Konten lengkap...",
		"category":  "Tips",
		"author_id": memberID,
		"status":    "PUBLISHED",
	}, nil)
	assert.Equal(t, 201, resp.StatusCode)

	resp = request("GET", "/v1/blog", nil, nil)
	assert.Equal(t, 200, resp.StatusCode)
	var posts []map[string]interface{}
	decodeData(t, resp, &posts)
	require.Len(t, posts, 1)

	resp = request("GET", "/v1/blog/tips-snorkeling-raja-ampat", nil, nil)
	assert.Equal(t, 200, resp.StatusCode)
	var post map[string]interface{}
	decodeData(t, resp, &post)
	assert.Equal(t, "Tips Snorkeling di Raja Ampat", post["title"])

	resp = request("GET", "/v1/team", nil, nil)
	assert.Equal(t, 200, resp.StatusCode)
	var team struct {
		Members       []map[string]interface{} `json:"members"`
		AverageRating float64                  `json:"average_rating"`
	}
	decodeData(t, resp, &team)
	require.Len(t, team.Members, 1)
	assert.InDelta(t, 4.8, team.AverageRating, 0.001)

	fmt.Println("✓ Blog and Team Verified")

	// ==========================================
	// STEP 9: Settings bootstrap with defaults
	// ==========================================
	resp = request("GET", "/v1/settings", nil, nil)
	assert.Equal(t, 200, resp.StatusCode)
	var publicSettings map[string]interface{}
	decodeData(t, resp, &publicSettings)
	assert.Equal(t, "MataRaung", publicSettings["company_name"])

	// ==========================================
	// STEP 10: Dashboard snapshot
	// ==========================================
	resp = request("GET", "/v1/admin/dashboard", nil, nil)
	assert.Equal(t, 200, resp.StatusCode)

	var dashboard map[string]interface{}
	decodeData(t, resp, &dashboard)
	assert.EqualValues(t, 1, dashboard["total_packages"])
	assert.EqualValues(t, 1, dashboard["active_packages"])
	assert.EqualValues(t, 1, dashboard["total_bookings"])
	assert.EqualValues(t, 1, dashboard["confirmed_bookings"])
	assert.EqualValues(t, 0, dashboard["pending_bookings"])
	assert.EqualValues(t, 1, dashboard["total_blog_posts"])
	assert.EqualValues(t, 1, dashboard["published_blog_posts"])
	assert.EqualValues(t, 1, dashboard["total_team_members"])
	assert.EqualValues(t, 300000, dashboard["monthly_revenue"])

	recent := dashboard["recent_bookings"].([]interface{})
	require.Len(t, recent, 1)

	top := dashboard["top_packages"].([]interface{})
	require.Len(t, top, 1)
	first := top[0].(map[string]interface{})
	assert.Equal(t, "Raja Ampat Explorer", first["name"])
	assert.EqualValues(t, 1, first["bookings"])
	assert.EqualValues(t, 300000, first["revenue"])

	fmt.Println("✓ Dashboard Verified")
}
