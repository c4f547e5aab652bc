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

func TestSendMessage(t *testing.T) {
	h := &MessageHandler{DB: setupTestDB(t)}

	req := httptest.NewRequest(http.MethodPost, "/send",
		strings.NewReader(`{"senderName":"Visitor","subject":"Hello","message":"Nice site"}`))
	rec := httptest.NewRecorder()

	h.Send(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var stored models.Message
	require.NoError(t, h.DB.First(&stored).Error)
	assert.Equal(t, "Visitor", stored.SenderName)
}

func TestSendMessage_MissingFields(t *testing.T) {
	h := &MessageHandler{DB: setupTestDB(t)}

	req := httptest.NewRequest(http.MethodPost, "/send",
		strings.NewReader(`{"senderName":"Visitor"}`))
	rec := httptest.NewRecorder()

	h.Send(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var count int64
	require.NoError(t, h.DB.Model(&models.Message{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestDeleteMessage(t *testing.T) {
	h := &MessageHandler{DB: setupTestDB(t)}
	msg := models.Message{SenderName: "Visitor", Subject: "Hello", Message: "Nice site"}
	require.NoError(t, h.DB.Create(&msg).Error)

	req := httptest.NewRequest(http.MethodDelete, "/delete/"+msg.ID.String(), nil)
	req.SetPathValue("id", msg.ID.String())
	rec := httptest.NewRecorder()

	h.Delete(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/delete/"+msg.ID.String(), nil)
	req.SetPathValue("id", msg.ID.String())
	h.Delete(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
