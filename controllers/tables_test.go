package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Ruleta/middleware"
	redis_models "Ruleta/models/redis"
	redis_service "Ruleta/services/redis"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupRouter(tc *TablesController) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/tables", tc.CreateTable)
	router.POST("/tables/join", tc.JoinTable)
	router.POST("/tables/rejoin", tc.RejoinTable)
	return router
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req, _ := http.NewRequest("POST", path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// Validation happens entirely at the HTTP boundary, so these cases never
// reach Redis and run against an empty controller.
func TestCreateTableValidation(t *testing.T) {
	router := setupRouter(&TablesController{})

	cases := []struct {
		name string
		body gin.H
	}{
		{"missing name", gin.H{"initialCredits": 1000, "max_bet": 100}},
		{"name too long", gin.H{"name": "abcdefghijklmnopqrstuvwxyz", "initialCredits": 1000, "max_bet": 100}},
		{"credits too low", gin.H{"name": "Alice", "initialCredits": 9, "max_bet": 100}},
		{"credits too high", gin.H{"name": "Alice", "initialCredits": 100001, "max_bet": 100}},
		{"max bet too low", gin.H{"name": "Alice", "initialCredits": 1000, "max_bet": 9}},
		{"max bet too high", gin.H{"name": "Alice", "initialCredits": 1000, "max_bet": 100001}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(router, "/tables", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestJoinTableValidation(t *testing.T) {
	router := setupRouter(&TablesController{})

	cases := []struct {
		name string
		body gin.H
	}{
		{"missing table id", gin.H{"name": "Bob"}},
		{"table id wrong length", gin.H{"tableID": "AB12", "name": "Bob"}},
		{"missing name", gin.H{"tableID": "AB12CD"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(router, "/tables/join", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

// Happy paths need a live Redis (redis-stack on localhost); skipped
// otherwise, same as the store tests.
func TestCreateAndJoinTable(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	rc, err := redis_service.InitRedis("localhost:6379", 0)
	if err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	defer redis_service.CloseRedis(rc)

	// The store needs the RedisJSON module (redis-stack), not just Redis.
	rc.DeleteTable("PROBE0")
	probe := redis_models.NewTable("PROBE0", 1000, 100, "probe")
	if err := rc.CreateTable(probe, time.Minute); err != nil {
		t.Skipf("RedisJSON not available: %v", err)
	}
	rc.DeleteTable("PROBE0")

	router := setupRouter(&TablesController{Redis: rc})

	w := postJSON(router, "/tables", gin.H{"name": "Alice", "initialCredits": 1000, "max_bet": 100})
	assert.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Table struct {
			Id         string `json:"id"`
			AdminID    string `json:"adminID"`
			HasStarted bool   `json:"hasStarted"`
		} `json:"table"`
		AccessToken string `json:"accessToken"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	fmt.Println("Response:", w.Body.String())

	assert.Len(t, created.Table.Id, 6)
	assert.False(t, created.Table.HasStarted)
	assert.NotEmpty(t, created.AccessToken)

	// The minted token binds the creator to the new room
	userId, tableId, name, err := middleware.DecodeTableToken(created.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, created.Table.AdminID, userId)
	assert.Equal(t, created.Table.Id, tableId)
	assert.Equal(t, "Alice", name)

	defer rc.DeleteTable(created.Table.Id)

	t.Run("join existing room", func(t *testing.T) {
		w := postJSON(router, "/tables/join", gin.H{"tableID": created.Table.Id, "name": "Bob"})
		assert.Equal(t, http.StatusOK, w.Code)

		var joined struct {
			AccessToken string `json:"accessToken"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &joined))

		joinedUser, joinedTable, _, err := middleware.DecodeTableToken(joined.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, created.Table.Id, joinedTable)
		assert.NotEqual(t, userId, joinedUser, "joining mints a fresh participant id")
	})

	t.Run("join unknown room", func(t *testing.T) {
		w := postJSON(router, "/tables/join", gin.H{"tableID": "ZZZZZZ", "name": "Bob"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("rejoin keeps the participant id", func(t *testing.T) {
		w := postJSON(router, "/tables/rejoin", gin.H{
			"tableID": created.Table.Id, "userID": userId, "name": "Alice"})
		assert.Equal(t, http.StatusOK, w.Code)

		var rejoined struct {
			AccessToken string `json:"accessToken"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &rejoined))

		rejoinedUser, _, _, err := middleware.DecodeTableToken(rejoined.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, userId, rejoinedUser)
	})
}
