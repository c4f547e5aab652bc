package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityavk/portfolio-server/internal/models"
)

func TestSectionUpdate_UpsertsSingleton(t *testing.T) {
	h := &SectionHandler{DB: setupTestDB(t)}

	body := `{"data":{"main":true,"about":true,"projects":false,"skills":true,"apps":false,"timeline":true,"contact":true,"footer":true,"darkMode":false}}`
	req := httptest.NewRequest(http.MethodPut, "/update", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Update(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var count int64
	require.NoError(t, h.DB.Model(&models.Section{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// A second update must modify the same row, not add one.
	body = `{"data":{"main":true,"about":false,"projects":true,"skills":true,"apps":true,"timeline":true,"contact":true,"footer":true,"darkMode":true}}`
	req = httptest.NewRequest(http.MethodPut, "/update", strings.NewReader(body))
	rec = httptest.NewRecorder()
	h.Update(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, h.DB.Model(&models.Section{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var section models.Section
	require.NoError(t, h.DB.First(&section).Error)
	assert.False(t, section.About)
	assert.True(t, section.DarkMode)
}

func TestSectionGet_EmptyIsOK(t *testing.T) {
	h := &SectionHandler{DB: setupTestDB(t)}

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/get", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
