//go:build !ters

package main

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/labstack/echo/v4"
)

// userJSON is the wire shape of a User. The fields of User are unexported,
// so the JSON view is built explicitly through the accessors.
type userJSON struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

func viewUser(u User) userJSON {
	return userJSON{
		ID:        u.Id(),
		Name:      u.Name(),
		Email:     u.Email(),
		CreatedAt: u.CreatedAt().UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

type userStore struct {
	mu    sync.Mutex
	users map[int64]*User
}

func (s *userStore) add(u User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.Id()] = &u
}

func (s *userStore) find(id int64) (*User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	return u, ok
}

func main() {
	store := &userStore{users: make(map[int64]*User)}
	store.add(NewUser(1, "amelia", "amelia@example.com"))

	e := echo.New()

	e.GET("/users/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
		}

		u, ok := store.find(id)
		if !ok {
			return echo.NewHTTPError(http.StatusNotFound, "no such user")
		}
		return c.JSON(http.StatusOK, viewUser(*u))
	})

	// SetEmail requires the *User handle from the store; the JSON view built
	// from a copy never mutates the stored record.
	e.PUT("/users/:id/email", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
		}

		var body struct {
			Email string `json:"email"`
		}
		if err := c.Bind(&body); err != nil {
			return err
		}

		u, ok := store.find(id)
		if !ok {
			return echo.NewHTTPError(http.StatusNotFound, "no such user")
		}
		u.SetEmail(body.Email)
		return c.JSON(http.StatusOK, viewUser(*u))
	})

	e.Logger.Fatal(e.Start(":8080"))
}
