// controllers/meal_controller.go
package controllers

import (
	"errors"
	"net/http"

	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	meals   *services.MealService
	summary *services.SummaryService
}

func NewMealController(meals *services.MealService, summary *services.SummaryService) *MealController {
	return &MealController{meals: meals, summary: summary}
}

// mealBody is shared by create and update: update replaces every
// mutable field, so the two payloads are identical.
type mealBody struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description" binding:"required"` // may be empty, must be present
	Day         string  `json:"day" binding:"required"`
	Hour        string  `json:"hour" binding:"required"`
	InsideDiet  *bool   `json:"insideDiet" binding:"required"`
}

// CreateMeal is the only handler allowed to run without a session:
// when the cookie is absent it mints a credential and hands it back.
func (mc *MealController) CreateMeal(c *gin.Context) {
	var body mealBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	credential, _ := c.Cookie(middlewares.SessionCookie)
	sessionID, isNew := services.ResolveSession(credential)
	if isNew {
		c.SetCookie(middlewares.SessionCookie, sessionID, services.SessionMaxAge, "/", "", false, false)
	}

	if _, err := mc.meals.Create(sessionID, body.Title, *body.Description, body.Day, body.Hour, *body.InsideDiet); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusCreated)
}

func (mc *MealController) ListMeals(c *gin.Context) {
	sessionID := c.GetString(middlewares.SessionKey)

	meals, err := mc.meals.List(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

func (mc *MealController) GetMeal(c *gin.Context) {
	sessionID := c.GetString(middlewares.SessionKey)

	meal, err := mc.meals.Get(sessionID, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

func (mc *MealController) UpdateMeal(c *gin.Context) {
	sessionID := c.GetString(middlewares.SessionKey)

	var body mealBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := mc.meals.Update(sessionID, c.Param("id"), body.Title, *body.Description, body.Day, body.Hour, *body.InsideDiet)
	if err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (mc *MealController) DeleteMeal(c *gin.Context) {
	sessionID := c.GetString(middlewares.SessionKey)

	if err := mc.meals.Delete(sessionID, c.Param("id")); err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (mc *MealController) GetSummary(c *gin.Context) {
	sessionID := c.GetString(middlewares.SessionKey)

	summary, err := mc.summary.Summarize(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
