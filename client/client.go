// Package client is a thin wrapper around the Folio REST API. It carries the
// session credential on every request, exposes one method per API operation
// and maps error statuses back onto the shared sentinel errors. It keeps no
// state across calls besides the credential and the verified user identity;
// callers are expected to re-fetch after every mutation instead of patching
// local copies.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"folioBackend/domain/library"
	"folioBackend/domain/literature"
	"folioBackend/domain/user"
	"folioBackend/utils"
)

const defaultTimeout = 30 * time.Second

type Client struct {
	baseURL     string
	httpClient  *http.Client
	accessToken string
	currentUser *user.UserOut
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// CurrentUser returns the session identity established by Verify, or nil
// when no session is active.
func (c *Client) CurrentUser() *user.UserOut {
	return c.currentUser
}

// CanEdit reports whether the session user owns the given item. This is a
// display convenience only; the server re-validates ownership on every
// mutation regardless.
func (c *Client) CanEdit(item literature.LiteratureOut) bool {
	return c.currentUser != nil && c.currentUser.ID == item.CreatorId
}

func (c *Client) Register(ctx context.Context, username string, password string) error {
	_, err := doJSON[any](ctx, c, http.MethodPost, "/users/register", user.CredentialsIn{
		Username: username,
		Password: password,
	})

	return err
}

func (c *Client) Login(ctx context.Context, username string, password string) error {
	_, err := doJSON[any](ctx, c, http.MethodPost, "/users/login", user.CredentialsIn{
		Username: username,
		Password: password,
	})

	return err
}

func (c *Client) Logout(ctx context.Context) error {
	_, err := doJSON[any](ctx, c, http.MethodPost, "/users/logout", nil)
	c.accessToken = ""
	c.currentUser = nil

	return err
}

// Verify resolves the carried credential into a user identity. A missing or
// expired session is not an error: it yields a nil user, the guest state.
func (c *Client) Verify(ctx context.Context) (*user.UserOut, error) {
	result, err := doJSON[user.UserOut](ctx, c, http.MethodGet, "/users/verify", nil)
	if errors.Is(err, utils.ErrorUnauthorized) || errors.Is(err, utils.ErrorTokenInvalid) {
		c.currentUser = nil
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	c.currentUser = &result

	return c.currentUser, nil
}

func (c *Client) ListLiterature(ctx context.Context) ([]literature.LiteratureOut, error) {
	return doJSON[[]literature.LiteratureOut](ctx, c, http.MethodGet, "/literatures", nil)
}

func (c *Client) GetLiterature(ctx context.Context, literatureId string) (literature.LiteratureDetailOut, error) {
	return doJSON[literature.LiteratureDetailOut](ctx, c, http.MethodGet, "/literatures/"+literatureId, nil)
}

func (c *Client) CreateLiterature(ctx context.Context, req literature.LiteratureIn) (string, error) {
	return doJSON[string](ctx, c, http.MethodPost, "/literatures", req)
}

func (c *Client) UpdateLiterature(ctx context.Context, literatureId string, req literature.LiteratureIn) error {
	_, err := doJSON[any](ctx, c, http.MethodPut, "/literatures/"+literatureId, req)
	return err
}

func (c *Client) DeleteLiterature(ctx context.Context, literatureId string) error {
	_, err := doJSON[any](ctx, c, http.MethodDelete, "/literatures/"+literatureId, nil)
	return err
}

func (c *Client) AddToLibrary(ctx context.Context, literatureId string, libraryId string) error {
	_, err := doJSON[any](ctx, c, http.MethodPost, "/literatures/"+literatureId+"/add-library/"+libraryId, nil)
	return err
}

func (c *Client) RemoveFromLibrary(ctx context.Context, literatureId string, libraryId string) error {
	_, err := doJSON[any](ctx, c, http.MethodPost, "/literatures/"+literatureId+"/remove-library/"+libraryId, nil)
	return err
}

func (c *Client) ListLibraries(ctx context.Context) ([]library.LibraryListOut, error) {
	return doJSON[[]library.LibraryListOut](ctx, c, http.MethodGet, "/libraries", nil)
}

func (c *Client) GetLibrary(ctx context.Context, libraryId string) (library.LibraryDetailOut, error) {
	return doJSON[library.LibraryDetailOut](ctx, c, http.MethodGet, "/libraries/"+libraryId, nil)
}

func (c *Client) CreateLibrary(ctx context.Context, req library.LibraryIn) (string, error) {
	return doJSON[string](ctx, c, http.MethodPost, "/libraries", req)
}

func (c *Client) UpdateLibrary(ctx context.Context, libraryId string, req library.LibraryIn) error {
	_, err := doJSON[any](ctx, c, http.MethodPut, "/libraries/"+libraryId, req)
	return err
}

func (c *Client) DeleteLibrary(ctx context.Context, libraryId string) error {
	_, err := doJSON[any](ctx, c, http.MethodDelete, "/libraries/"+libraryId, nil)
	return err
}

func (c *Client) RemoveLibraryMember(ctx context.Context, libraryId string, literatureId string) error {
	_, err := doJSON[any](ctx, c, http.MethodDelete, "/libraries/"+libraryId+"/literatures/"+literatureId, nil)
	return err
}

func doJSON[T any](ctx context.Context, c *Client, method string, path string, body any) (T, error) {
	var zero T

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return zero, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return zero, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.accessToken != "" {
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: c.accessToken})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zero, fmt.Errorf("%w: %s", utils.ErrorServer, err.Error())
	}
	defer resp.Body.Close()

	c.captureAccessToken(resp)

	if resp.StatusCode != http.StatusOK {
		return zero, decodeError(resp)
	}

	var envelope utils.OkResponse[T]
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return zero, fmt.Errorf("failed to decode response: %w", err)
	}

	return envelope.Payload, nil
}

func (c *Client) captureAccessToken(resp *http.Response) {
	for _, cookie := range resp.Cookies() {
		if cookie.Name != "accessToken" {
			continue
		}

		if cookie.MaxAge < 0 {
			c.accessToken = ""
		} else {
			c.accessToken = cookie.Value
		}
	}
}

// decodeError turns a non-OK response into one of the shared sentinel
// errors, keeping the server's own message when the body carries one.
func decodeError(resp *http.Response) error {
	sentinel := sentinelForStatus(resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return sentinel
	}

	var envelope utils.ErrorResponse
	if err := json.Unmarshal(data, &envelope); err != nil || envelope.Message == "" {
		return sentinel
	}

	return fmt.Errorf("%w: %s", sentinel, envelope.Message)
}

func sentinelForStatus(status int) error {
	switch status {
	case http.StatusBadRequest:
		return utils.ErrorValidationError
	case http.StatusUnauthorized:
		return utils.ErrorUnauthorized
	case http.StatusForbidden:
		return utils.ErrorForbidden
	case http.StatusNotFound:
		return utils.ErrorUuidNotFound
	case http.StatusConflict:
		return utils.ErrorDuplicateMembership
	default:
		return utils.ErrorServer
	}
}
