package repository

import (
	"path/filepath"
	"testing"

	"backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Meal{}))
	return db
}

func newMeal(owner, title, day string, insideDiet bool) *models.Meal {
	return &models.Meal{
		ID:          uuid.NewString(),
		UserID:      owner,
		Title:       title,
		Description: "test meal",
		Day:         day,
		Hour:        "12:00",
		InsideDiet:  insideDiet,
	}
}

func TestMealRepoInsertAndFindByID(t *testing.T) {
	repo := NewMealRepo(setupTestDB(t))

	meal := newMeal("owner-a", "Lunch", "21/04/2023", true)
	require.NoError(t, repo.Insert(meal))

	got, err := repo.FindByID(meal.ID)
	require.NoError(t, err)
	assert.Equal(t, meal.ID, got.ID)
	assert.Equal(t, "owner-a", got.UserID)
	assert.Equal(t, "Lunch", got.Title)

	_, err = repo.FindByID(uuid.NewString())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMealRepoFindByOwnerScopesAndKeepsOrder(t *testing.T) {
	repo := NewMealRepo(setupTestDB(t))

	m1 := newMeal("owner-a", "M1", "21/04/2023", true)
	m2 := newMeal("owner-a", "M2", "21/04/2023", false)
	m3 := newMeal("owner-a", "M3", "22/04/2023", true)
	other := newMeal("owner-b", "Not mine", "21/04/2023", true)
	for _, m := range []*models.Meal{m1, m2, m3, other} {
		require.NoError(t, repo.Insert(m))
	}

	meals, err := repo.FindByOwner("owner-a")
	require.NoError(t, err)
	require.Len(t, meals, 3)
	assert.Equal(t, "M1", meals[0].Title)
	assert.Equal(t, "M2", meals[1].Title)
	assert.Equal(t, "M3", meals[2].Title)
}

func TestMealRepoCountByOwner(t *testing.T) {
	repo := NewMealRepo(setupTestDB(t))

	require.NoError(t, repo.Insert(newMeal("owner-a", "A", "21/04/2023", true)))
	require.NoError(t, repo.Insert(newMeal("owner-a", "B", "21/04/2023", false)))
	require.NoError(t, repo.Insert(newMeal("owner-b", "C", "21/04/2023", true)))

	total, err := repo.CountByOwner("owner-a", nil)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	onDiet := true
	inside, err := repo.CountByOwner("owner-a", &onDiet)
	require.NoError(t, err)
	assert.EqualValues(t, 1, inside)

	offDiet := false
	off, err := repo.CountByOwner("owner-a", &offDiet)
	require.NoError(t, err)
	assert.EqualValues(t, 1, off)
}

func TestMealRepoOnDietCountsByDay(t *testing.T) {
	repo := NewMealRepo(setupTestDB(t))

	require.NoError(t, repo.Insert(newMeal("owner-a", "A", "21/04/2023", true)))
	require.NoError(t, repo.Insert(newMeal("owner-a", "B", "21/04/2023", true)))
	require.NoError(t, repo.Insert(newMeal("owner-a", "C", "22/04/2023", true)))
	require.NoError(t, repo.Insert(newMeal("owner-a", "D", "22/04/2023", false))) // off-diet, excluded
	require.NoError(t, repo.Insert(newMeal("owner-b", "E", "21/04/2023", true))) // foreign, excluded

	rows, err := repo.OnDietCountsByDay("owner-a")
	require.NoError(t, err)

	counts := map[string]int64{}
	for _, row := range rows {
		counts[row.Day] = row.Count
	}
	assert.Equal(t, map[string]int64{"21/04/2023": 2, "22/04/2023": 1}, counts)
}

func TestMealRepoUpdateByIDReplacesFieldsOnly(t *testing.T) {
	repo := NewMealRepo(setupTestDB(t))

	meal := newMeal("owner-a", "Dinner", "21/04/2023", true)
	require.NoError(t, repo.Insert(meal))

	err := repo.UpdateByID(meal.ID, &models.Meal{
		Title:       "Dinner",
		Description: "rice and beans",
		Day:         "21/04/2023",
		Hour:        "21:00",
		InsideDiet:  false, // false must actually be written
	})
	require.NoError(t, err)

	got, err := repo.FindByID(meal.ID)
	require.NoError(t, err)
	assert.Equal(t, "rice and beans", got.Description)
	assert.Equal(t, "21:00", got.Hour)
	assert.False(t, got.InsideDiet)
	assert.Equal(t, meal.ID, got.ID)
	assert.Equal(t, "owner-a", got.UserID)
}

func TestMealRepoDeleteByID(t *testing.T) {
	repo := NewMealRepo(setupTestDB(t))

	meal := newMeal("owner-a", "Dinner", "21/04/2023", true)
	require.NoError(t, repo.Insert(meal))
	require.NoError(t, repo.DeleteByID(meal.ID))

	_, err := repo.FindByID(meal.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepoInsertAndFindByID(t *testing.T) {
	repo := NewUserRepo(setupTestDB(t))

	user := &models.User{ID: uuid.NewString(), Name: "Emanuel"}
	require.NoError(t, repo.Insert(user))

	got, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Emanuel", got.Name)
}
