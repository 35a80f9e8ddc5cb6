package grocery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	groceryService "nutriplan-api/internal/core/grocery"
	"nutriplan-api/internal/pkg/common"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	common.Logger = zap.NewNop()
	os.Exit(m.Run())
}

func newTestRouter() *gin.Engine {
	handler := NewHandler(groceryService.NewService(groceryService.NewLexicon()))
	r := gin.New()
	r.POST("/api/grocery-list", handler.HandleGenerate)
	r.POST("/api/grocery-list/update-checks", handler.HandleUpdateChecks)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleGenerate(t *testing.T) {
	r := newTestRouter()

	w := postJSON(t, r, "/api/grocery-list", GenerateRequest{
		MealPlan:    "Breakfast: Scramble\n• 2 eggs\n• 1 tbsp olive oil",
		Days:        1,
		MealsPerDay: 1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.RecipesFound)
	assert.Equal(t, 2, resp.IngredientsProcessed)
	require.Len(t, resp.GroceryList, 2)
	assert.Equal(t, "Eggs", resp.GroceryList[0].Name)
	assert.NotEmpty(t, resp.ShoppingTips)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestHandleGenerateValidation(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name string
		req  GenerateRequest
	}{
		{"missing meal plan", GenerateRequest{Days: 1, MealsPerDay: 1}},
		{"days too high", GenerateRequest{MealPlan: "Dinner: Soup\n• 2 carrots", Days: 15, MealsPerDay: 1}},
		{"meals too high", GenerateRequest{MealPlan: "Dinner: Soup\n• 2 carrots", Days: 1, MealsPerDay: 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, r, "/api/grocery-list", tt.req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandleGenerateNoRecipes(t *testing.T) {
	r := newTestRouter()

	w := postJSON(t, r, "/api/grocery-list", GenerateRequest{
		MealPlan:    "nothing resembling a meal plan here",
		Days:        1,
		MealsPerDay: 1,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Contains(t, resp["error"], "No recipes")
}

func TestHandleUpdateChecks(t *testing.T) {
	r := newTestRouter()

	w := postJSON(t, r, "/api/grocery-list/update-checks", UpdateChecksRequest{
		GroceryList: []groceryService.Item{
			{Name: "Spinach", Quantity: "1", Unit: "bag"},
		},
		ItemUpdates: []groceryService.CheckUpdate{
			{Name: "spinach", IsChecked: true},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success     bool                  `json:"success"`
		GroceryList []groceryService.Item `json:"grocery_list"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.GroceryList, 1)
	assert.True(t, resp.GroceryList[0].IsChecked)
	require.NotNil(t, resp.GroceryList[0].CheckedAt)
}
