package auth

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	cookieName = "cluequest"
	gameKey    = "game_session"
)

var Store *sessions.CookieStore

// Init prepares the cookie store that remembers a browser's current game.
func Init(secret string) {
	Store = sessions.NewCookieStore([]byte(secret))
	Store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// RememberGame stores the game session id in the browser cookie.
func RememberGame(w http.ResponseWriter, r *http.Request, sessionID string) error {
	session, _ := Store.Get(r, cookieName)
	session.Values[gameKey] = sessionID
	return session.Save(r, w)
}

// CurrentGame returns the remembered game session id, or "".
func CurrentGame(r *http.Request) string {
	session, err := Store.Get(r, cookieName)
	if err != nil {
		return ""
	}
	id, _ := session.Values[gameKey].(string)
	return id
}
