package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"folioBackend/domain/library"
	"folioBackend/domain/literature"
	"folioBackend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performRequest(router http.Handler, method string, path string, body any, accessToken string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: accessToken})
	}

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	return resp
}

func decodePayload[T any](t *testing.T, resp *httptest.ResponseRecorder) T {
	t.Helper()

	var response utils.OkResponse[T]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))

	return response.Payload
}

// === GET ===

func TestGetLiteratures_AsGuest(t *testing.T) {
	router, _, _ := SetupTestServer(t)

	resp := performRequest(router, "GET", "/literatures", nil, "")
	assert.Equal(t, http.StatusOK, resp.Code)

	payload := decodePayload[[]literature.LiteratureOut](t, resp)
	require.Len(t, payload, 2)

	titles := map[string]bool{}
	for _, item := range payload {
		titles[item.Title] = true
	}
	assert.True(t, titles["The Go Programming Language"])
	assert.True(t, titles["In Search of an Understandable Consensus Algorithm"])
}

func TestGetLiteratureDetail_AsGuest_HasEmptyPartitions(t *testing.T) {
	router, _, _ := SetupTestServer(t)

	resp := performRequest(router, "GET", "/literatures/"+RaftPaperId, nil, "")
	assert.Equal(t, http.StatusOK, resp.Code)

	payload := decodePayload[literature.LiteratureDetailOut](t, resp)
	assert.Equal(t, RaftPaperId, payload.Literature.ID)
	assert.Equal(t, "Conference Paper", payload.Literature.LiteratureTypeName)
	assert.Empty(t, payload.LibrariesNotAssociated)
	assert.Empty(t, payload.UserAssociatedLibraries)
}

func TestGetLiteratureDetail_PartitionsOwnLibraries(t *testing.T) {
	router, authManager, _ := SetupTestServer(t)
	token := AccessTokenFor(t, authManager, AliceUserId, "alice")

	resp := performRequest(router, "GET", "/literatures/"+RaftPaperId, nil, token)
	assert.Equal(t, http.StatusOK, resp.Code)

	payload := decodePayload[literature.LiteratureDetailOut](t, resp)

	require.Len(t, payload.UserAssociatedLibraries, 1)
	assert.Equal(t, DistSysLibraryId, payload.UserAssociatedLibraries[0].ID)

	require.Len(t, payload.LibrariesNotAssociated, 1)
	assert.Equal(t, ReadingListLibraryId, payload.LibrariesNotAssociated[0].ID)

	// The partitions never overlap and together cover every owned library
	seen := map[string]bool{}
	for _, item := range payload.UserAssociatedLibraries {
		seen[item.ID] = true
	}
	for _, item := range payload.LibrariesNotAssociated {
		assert.False(t, seen[item.ID])
		seen[item.ID] = true
	}

	listResp := performRequest(router, "GET", "/libraries", nil, token)
	mine := decodePayload[[]library.LibraryListOut](t, listResp)
	assert.Equal(t, len(mine), len(seen))
	for _, owned := range mine {
		assert.True(t, seen[owned.ID])
	}
}

func TestGetLiteratureDetail_UnknownUuid(t *testing.T) {
	router, _, _ := SetupTestServer(t)

	resp := performRequest(router, "GET", "/literatures/does-not-exist", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

// === CREATE ===

func TestCreateLiterature_RequiresSession(t *testing.T) {
	router, _, _ := SetupTestServer(t)

	resp := performRequest(router, "POST", "/literatures", literature.LiteratureIn{
		Title:          "Structure and Interpretation of Computer Programs",
		Authors:        "Abelson, Sussman",
		LiteratureType: literature.TypeBook,
	}, "")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestCreateLiterature_MissingTitle(t *testing.T) {
	router, authManager, _ := SetupTestServer(t)
	token := AccessTokenFor(t, authManager, AliceUserId, "alice")

	resp := performRequest(router, "POST", "/literatures", map[string]any{
		"authors":         "Anonymous",
		"literature_type": 1,
	}, token)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCreateLiterature_InvalidType(t *testing.T) {
	router, authManager, _ := SetupTestServer(t)
	token := AccessTokenFor(t, authManager, AliceUserId, "alice")

	resp := performRequest(router, "POST", "/literatures", map[string]any{
		"title":           "Unknown Kind",
		"authors":         "Anonymous",
		"literature_type": 9,
	}, token)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCreateLiterature_CoercesStringTypeCode(t *testing.T) {
	router, authManager, _ := SetupTestServer(t)
	token := AccessTokenFor(t, authManager, AliceUserId, "alice")

	resp := performRequest(router, "POST", "/literatures", map[string]any{
		"title":           "Communicating Sequential Processes",
		"authors":         "C. A. R. Hoare",
		"literature_type": "2",
	}, token)
	require.Equal(t, http.StatusOK, resp.Code)

	newId := decodePayload[string](t, resp)

	detailResp := performRequest(router, "GET", "/literatures/"+newId, nil, token)
	payload := decodePayload[literature.LiteratureDetailOut](t, detailResp)
	assert.Equal(t, literature.TypeArticle, payload.Literature.LiteratureType)
	assert.Equal(t, AliceUserId, payload.Literature.CreatorId)
}

// === UPDATE ===

func TestUpdateLiterature_NotOwner(t *testing.T) {
	router, authManager, _ := SetupTestServer(t)
	token := AccessTokenFor(t, authManager, BobUserId, "bob")

	resp := performRequest(router, "PUT", "/literatures/"+GoBookId, literature.LiteratureIn{
		Title:          "Hijacked",
		Authors:        "Bob",
		LiteratureType: literature.TypeBook,
	}, token)

	assert.Equal(t, http.StatusForbidden, resp.Code)

	// The record is untouched
	detailResp := performRequest(router, "GET", "/literatures/"+GoBookId, nil, "")
	payload := decodePayload[literature.LiteratureDetailOut](t, detailResp)
	assert.Equal(t, "The Go Programming Language", payload.Literature.Title)
}

func TestUpdateLiterature_AsOwner(t *testing.T) {
	router, authManager, _ := SetupTestServer(t)
	token := AccessTokenFor(t, authManager, AliceUserId, "alice")

	resp := performRequest(router, "PUT", "/literatures/"+GoBookId, literature.LiteratureIn{
		Title:          "The Go Programming Language, 2nd Edition",
		Authors:        "Alan A. A. Donovan, Brian W. Kernighan",
		LiteratureType: literature.TypeBook,
	}, token)
	assert.Equal(t, http.StatusOK, resp.Code)

	detailResp := performRequest(router, "GET", "/literatures/"+GoBookId, nil, "")
	payload := decodePayload[literature.LiteratureDetailOut](t, detailResp)
	assert.Equal(t, "The Go Programming Language, 2nd Edition", payload.Literature.Title)
}

func TestUpdateLiterature_InvalidUrl(t *testing.T) {
	router, authManager, _ := SetupTestServer(t)
	token := AccessTokenFor(t, authManager, AliceUserId, "alice")

	resp := performRequest(router, "PUT", "/literatures/"+GoBookId, literature.LiteratureIn{
		Title:          "The Go Programming Language",
		Authors:        "Alan A. A. Donovan, Brian W. Kernighan",
		Url:            "not a url",
		LiteratureType: literature.TypeBook,
	}, token)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

// === DELETE ===

func TestDeleteLiterature_NotOwner(t *testing.T) {
	router, authManager, _ := SetupTestServer(t)
	token := AccessTokenFor(t, authManager, AliceUserId, "alice")

	resp := performRequest(router, "DELETE", "/literatures/"+RaftPaperId, nil, token)
	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestDeleteLiterature_CascadesMemberships(t *testing.T) {
	router, authManager, _ := SetupTestServer(t)
	bobToken := AccessTokenFor(t, authManager, BobUserId, "bob")
	aliceToken := AccessTokenFor(t, authManager, AliceUserId, "alice")

	// The Raft paper is a member of Alice's Distributed Systems library
	resp := performRequest(router, "DELETE", "/literatures/"+RaftPaperId, nil, bobToken)
	require.Equal(t, http.StatusOK, resp.Code)

	listResp := performRequest(router, "GET", "/literatures", nil, "")
	remaining := decodePayload[[]literature.LiteratureOut](t, listResp)
	for _, item := range remaining {
		assert.NotEqual(t, RaftPaperId, item.ID)
	}

	libResp := performRequest(router, "GET", "/libraries/"+DistSysLibraryId, nil, aliceToken)
	libPayload := decodePayload[library.LibraryDetailOut](t, libResp)
	assert.Empty(t, libPayload.Literature)
}

// === MEMBERSHIP ===

func TestAddToLibrary_MovesBetweenPartitions(t *testing.T) {
	router, authManager, _ := SetupTestServer(t)
	token := AccessTokenFor(t, authManager, AliceUserId, "alice")

	resp := performRequest(router, "POST", "/literatures/"+RaftPaperId+"/add-library/"+ReadingListLibraryId, nil, token)
	require.Equal(t, http.StatusOK, resp.Code)

	detailResp := performRequest(router, "GET", "/literatures/"+RaftPaperId, nil, token)
	payload := decodePayload[literature.LiteratureDetailOut](t, detailResp)
	assert.Len(t, payload.UserAssociatedLibraries, 2)
	assert.Empty(t, payload.LibrariesNotAssociated)
}

func TestAddToLibrary_ForeignLibrary(t *testing.T) {
	router, authManager, _ := SetupTestServer(t)
	token := AccessTokenFor(t, authManager, AliceUserId, "alice")

	// Compilers belongs to Bob; Alice may not add to it
	resp := performRequest(router, "POST", "/literatures/"+RaftPaperId+"/add-library/"+CompilersLibraryId, nil, token)
	assert.Equal(t, http.StatusForbidden, resp.Code)

	bobToken := AccessTokenFor(t, authManager, BobUserId, "bob")
	libResp := performRequest(router, "GET", "/libraries/"+CompilersLibraryId, nil, bobToken)
	libPayload := decodePayload[library.LibraryDetailOut](t, libResp)
	require.Len(t, libPayload.Literature, 1)
	assert.Equal(t, GoBookId, libPayload.Literature[0].ID)
}

func TestAddToLibrary_DuplicateIsConflict(t *testing.T) {
	router, authManager, _ := SetupTestServer(t)
	token := AccessTokenFor(t, authManager, AliceUserId, "alice")

	first := performRequest(router, "POST", "/literatures/"+GoBookId+"/add-library/"+ReadingListLibraryId, nil, token)
	require.Equal(t, http.StatusOK, first.Code)

	second := performRequest(router, "POST", "/literatures/"+GoBookId+"/add-library/"+ReadingListLibraryId, nil, token)
	assert.Equal(t, http.StatusConflict, second.Code)

	var errorBody utils.ErrorResponse
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &errorBody))
	assert.Equal(t, utils.ErrorDuplicateMembership.Error(), errorBody.Message)

	// Exactly one membership row survives the conflict
	libResp := performRequest(router, "GET", "/libraries/"+ReadingListLibraryId, nil, token)
	libPayload := decodePayload[library.LibraryDetailOut](t, libResp)
	count := 0
	for _, member := range libPayload.Literature {
		if member.ID == GoBookId {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestRemoveFromLibrary_IsIdempotent(t *testing.T) {
	router, authManager, _ := SetupTestServer(t)
	token := AccessTokenFor(t, authManager, AliceUserId, "alice")

	first := performRequest(router, "POST", "/literatures/"+RaftPaperId+"/remove-library/"+DistSysLibraryId, nil, token)
	assert.Equal(t, http.StatusOK, first.Code)

	second := performRequest(router, "POST", "/literatures/"+RaftPaperId+"/remove-library/"+DistSysLibraryId, nil, token)
	assert.Equal(t, http.StatusOK, second.Code)

	libResp := performRequest(router, "GET", "/libraries/"+DistSysLibraryId, nil, token)
	libPayload := decodePayload[library.LibraryDetailOut](t, libResp)
	assert.Empty(t, libPayload.Literature)
}

func TestRemoveFromLibrary_ForeignLibrary(t *testing.T) {
	router, authManager, _ := SetupTestServer(t)
	token := AccessTokenFor(t, authManager, BobUserId, "bob")

	resp := performRequest(router, "POST", "/literatures/"+RaftPaperId+"/remove-library/"+DistSysLibraryId, nil, token)
	assert.Equal(t, http.StatusForbidden, resp.Code)
}
