package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityavk/portfolio-server/internal/models"
)

func projectForm(t *testing.T, withBanner bool) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range map[string]string{
		"title":        "Portfolio Site",
		"description":  "This very site",
		"gitRepoLink":  "https://github.com/owner/site",
		"projectLink":  "https://portfolio.test",
		"stack":        "MERN",
		"technologies": "React, Node",
		"deployed":     "Yes",
	} {
		require.NoError(t, writer.WriteField(k, v))
	}
	if withBanner {
		banner, err := writer.CreateFormFile("projectBanner", "banner.png")
		require.NoError(t, err)
		_, err = banner.Write([]byte("fake-banner"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestAddProject(t *testing.T) {
	media := &fakeMediaStore{}
	h := &ProjectHandler{DB: setupTestDB(t), Media: media}

	body, contentType := projectForm(t, true)
	req := httptest.NewRequest(http.MethodPost, "/add", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Add(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var stored models.Project
	require.NoError(t, h.DB.First(&stored).Error)
	assert.Equal(t, "Portfolio Site", stored.Title)
	assert.Equal(t, "PROJECTS/banner.png", stored.Banner.PublicID)
}

func TestAddProject_MissingBanner(t *testing.T) {
	h := &ProjectHandler{DB: setupTestDB(t), Media: &fakeMediaStore{}}

	body, contentType := projectForm(t, false)
	req := httptest.NewRequest(http.MethodPost, "/add", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Add(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteProject_RemovesBannerObject(t *testing.T) {
	media := &fakeMediaStore{}
	h := &ProjectHandler{DB: setupTestDB(t), Media: media}

	project := models.Project{
		Title: "Old", Description: "d", GitRepoLink: "g", ProjectLink: "p",
		Stack: "s", Technologies: "t", Deployed: "Yes",
		Banner: models.MediaRef{PublicID: "PROJECTS/old.png", URL: "https://media.test/PROJECTS/old.png"},
	}
	require.NoError(t, h.DB.Create(&project).Error)

	req := httptest.NewRequest(http.MethodDelete, "/delete/"+project.ID.String(), nil)
	req.SetPathValue("id", project.ID.String())
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, media.deleted, "PROJECTS/old.png")

	var count int64
	require.NoError(t, h.DB.Model(&models.Project{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestUpdateProject_ReplacesBanner(t *testing.T) {
	media := &fakeMediaStore{}
	h := &ProjectHandler{DB: setupTestDB(t), Media: media}

	project := models.Project{
		Title: "Old", Description: "d", GitRepoLink: "g", ProjectLink: "p",
		Stack: "s", Technologies: "t", Deployed: "Yes",
		Banner: models.MediaRef{PublicID: "PROJECTS/old.png", URL: "https://media.test/PROJECTS/old.png"},
	}
	require.NoError(t, h.DB.Create(&project).Error)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("title", "Renamed"))
	banner, err := writer.CreateFormFile("projectBanner", "new.png")
	require.NoError(t, err)
	_, err = banner.Write([]byte("new-banner"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPut, "/update/"+project.ID.String(), body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.SetPathValue("id", project.ID.String())
	rec := httptest.NewRecorder()

	h.Update(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var stored models.Project
	require.NoError(t, h.DB.Where("id = ?", project.ID).First(&stored).Error)
	assert.Equal(t, "Renamed", stored.Title)
	assert.Equal(t, "PROJECTS/new.png", stored.Banner.PublicID)
	assert.Contains(t, media.deleted, "PROJECTS/old.png")
}
