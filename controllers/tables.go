package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"Ruleta/middleware"
	redis_models "Ruleta/models/redis"
	"Ruleta/services/history"
	"Ruleta/services/redis"
	"Ruleta/services/tables"
	"Ruleta/utils"

	"github.com/gin-gonic/gin"
)

// TablesController serves table creation and admission. Both endpoints end
// by minting the JWT the socket.io gateway will demand on connect.
type TablesController struct {
	Redis    *redis.RedisClient
	Recorder *history.Recorder
}

type CreateTableDto struct {
	Name           string `json:"name" binding:"required,min=1,max=25"`
	InitialCredits int    `json:"initialCredits" binding:"required,min=10,max=100000"`
	MaxBet         int    `json:"max_bet" binding:"required,min=10,max=100000"`
}

type JoinTableDto struct {
	TableID string `json:"tableID" binding:"required,len=6"`
	Name    string `json:"name" binding:"required,min=1,max=25"`
}

type RejoinTableDto struct {
	TableID string `json:"tableID" binding:"required,len=6"`
	UserID  string `json:"userID" binding:"required"`
	Name    string `json:"name" binding:"required,min=1,max=25"`
}

// Ping is a basic health endpoint
// @Summary Health check
// @Produce json
// @Success 200 {object} object{message=string}
// @Router /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// @Summary Creates a new roulette table
// @Description Creates the room document, makes the caller its admin and returns the access token for the socket connection
// @Tags tables
// @Accept json
// @Produce json
// @Param request body controllers.CreateTableDto true "Table parameters"
// @Success 201 {object} object{table=object,accessToken=string}
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /tables [post]
func (tc *TablesController) CreateTable(c *gin.Context) {
	var dto CreateTableDto
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid table parameters: " + err.Error()})
		return
	}

	tableId, err := tc.uniqueTableCode()
	if err != nil {
		log.Printf("[CREATE-ERROR] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating room code"})
		return
	}

	userId, err := utils.NewUserID()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating user id"})
		return
	}

	table := redis_models.NewTable(tableId, dto.InitialCredits, dto.MaxBet, userId)
	if err := tc.Redis.CreateTable(table, middleware.SessionDuration()); err != nil {
		log.Printf("[CREATE-ERROR] Failed to persist table %s: %v", tableId, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating table"})
		return
	}

	accessToken, err := middleware.IssueTableToken(userId, tableId, dto.Name)
	if err != nil {
		log.Printf("[CREATE-ERROR] Failed to sign token for table %s: %v", tableId, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error issuing access token"})
		return
	}

	log.Printf("[CREATE] Table %s created by %s", tableId, userId)
	c.JSON(http.StatusCreated, gin.H{"table": table, "accessToken": accessToken})
}

// @Summary Joins an existing roulette table
// @Description Validates the room code and returns a fresh access token; the participant itself is created when the socket connects
// @Tags tables
// @Accept json
// @Produce json
// @Param request body controllers.JoinTableDto true "Join parameters"
// @Success 200 {object} object{table=object,accessToken=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /tables/join [post]
func (tc *TablesController) JoinTable(c *gin.Context) {
	var dto JoinTableDto
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid join parameters: " + err.Error()})
		return
	}

	table, err := tc.Redis.GetTable(dto.TableID)
	if err != nil {
		tc.tableError(c, dto.TableID, err)
		return
	}

	userId, err := utils.NewUserID()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating user id"})
		return
	}

	accessToken, err := middleware.IssueTableToken(userId, dto.TableID, dto.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error issuing access token"})
		return
	}

	log.Printf("[JOIN] User %s joining table %s", userId, dto.TableID)
	c.JSON(http.StatusOK, gin.H{"table": table, "accessToken": accessToken})
}

// @Summary Rejoins a table with an existing participant id
// @Description Re-mints the access token for a participant that lost its credential (page refresh)
// @Tags tables
// @Accept json
// @Produce json
// @Param request body controllers.RejoinTableDto true "Rejoin parameters"
// @Success 200 {object} object{table=object,accessToken=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /tables/rejoin [post]
func (tc *TablesController) RejoinTable(c *gin.Context) {
	var dto RejoinTableDto
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rejoin parameters: " + err.Error()})
		return
	}

	table, err := tc.Redis.GetTable(dto.TableID)
	if err != nil {
		tc.tableError(c, dto.TableID, err)
		return
	}

	accessToken, err := middleware.IssueTableToken(dto.UserID, dto.TableID, dto.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error issuing access token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"table": table, "accessToken": accessToken})
}

// @Summary Lists recent settled rounds of a table
// @Tags tables
// @Produce json
// @Param id path string true "Table code"
// @Param limit query int false "Maximum number of rounds (default 20)"
// @Success 200 {array} postgres.RoundResult
// @Failure 500 {object} object{error=string}
// @Router /tables/{id}/history [get]
func (tc *TablesController) GetTableHistory(c *gin.Context) {
	tableId := c.Param("id")

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	results, err := tc.Recorder.Recent(tableId, limit)
	if err != nil {
		log.Printf("[HISTORY-ERROR] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error querying round history"})
		return
	}
	c.JSON(http.StatusOK, results)
}

// uniqueTableCode loops code generation against the store's existence check
// until it finds a free one. Collisions are practically impossible with 36^6
// codes, but the check keeps a duplicate from hijacking a live room.
func (tc *TablesController) uniqueTableCode() (string, error) {
	for i := 0; i < 5; i++ {
		code, err := utils.NewTableCode()
		if err != nil {
			return "", err
		}
		exists, err := tc.Redis.TableExists(code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", errors.New("could not find a free room code")
}

func (tc *TablesController) tableError(c *gin.Context, tableId string, err error) {
	if tables.KindOf(err) == tables.KindNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
		return
	}
	log.Printf("[TABLE-ERROR] Failed to read table %s: %v", tableId, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Error reading table"})
}
