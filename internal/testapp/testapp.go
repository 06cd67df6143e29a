// Package testapp serves a local copy of the practice pages driven by the
// page objects: a login form guarding a secure area and two dynamic loading
// examples. Browser tests run against it instead of the public site.
package testapp

import (
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Credentials accepted by the login form.
const (
	Username = "tomsmith"
	Password = "SuperSecretPassword!"
)

// Flash messages shown by the application.
const (
	LoginSuccess    = "You logged into a secure area!"
	LogoutSuccess   = "You logged out of the secure area!"
	InvalidUsername = "Your username is invalid!"
	InvalidPassword = "Your password is invalid!"
	LoginRequired   = "You must login to view the secure area!"
)

const (
	flashCookie   = "flash"
	sessionCookie = "rack.session"
)

// Options configures the application.
type Options struct {
	// LoadDelay is how long the dynamic loading examples take to finish.
	LoadDelay time.Duration
}

type server struct {
	opts Options
}

// New returns the application's HTTP handler.
func New(opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.SetHTMLTemplate(pages)
	server{opts: opts}.RegisterRoutes(r)
	return r
}

func (s server) RegisterRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/login") })
	r.GET("/login", s.Login)
	r.POST("/authenticate", s.Authenticate)
	r.GET("/secure", s.Secure)
	r.GET("/logout", s.Logout)
	r.GET("/dynamic_loading/:example", s.DynamicLoading)
}

type flash struct {
	Kind, Message string
}

func setFlash(c *gin.Context, kind, message string) {
	c.SetCookie(flashCookie, kind+":"+message, 0, "/", "", false, true)
}

// takeFlash returns the pending flash message and clears it.
func takeFlash(c *gin.Context) *flash {
	v, err := c.Cookie(flashCookie)
	if err != nil || v == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	kind, msg, ok := strings.Cut(v, ":")
	if !ok {
		return nil
	}
	return &flash{Kind: kind, Message: msg}
}

func (s server) Login(c *gin.Context) {
	c.HTML(http.StatusOK, "login", gin.H{"Flash": takeFlash(c)})
}

func (s server) Authenticate(c *gin.Context) {
	switch {
	case c.PostForm("username") != Username:
		setFlash(c, "error", InvalidUsername)
	case c.PostForm("password") != Password:
		setFlash(c, "error", InvalidPassword)
	default:
		c.SetCookie(sessionCookie, Username, 0, "/", "", false, true)
		setFlash(c, "success", LoginSuccess)
		c.Redirect(http.StatusFound, "/secure")
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

func (s server) Secure(c *gin.Context) {
	if user, err := c.Cookie(sessionCookie); err != nil || user != Username {
		setFlash(c, "error", LoginRequired)
		c.Redirect(http.StatusFound, "/login")
		return
	}
	c.HTML(http.StatusOK, "secure", gin.H{"Flash": takeFlash(c)})
}

func (s server) Logout(c *gin.Context) {
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	setFlash(c, "success", LogoutSuccess)
	c.Redirect(http.StatusFound, "/login")
}

func (s server) DynamicLoading(c *gin.Context) {
	n, err := strconv.Atoi(c.Param("example"))
	if err != nil || n < 1 || n > 2 {
		c.String(http.StatusNotFound, "Not Found")
		return
	}
	c.HTML(http.StatusOK, "dynamic_loading", gin.H{
		"Example": n,
		"DelayMS": s.opts.LoadDelay.Milliseconds(),
	})
}

var pages = template.Must(template.New("").Parse(`
{{define "flash"}}{{with .Flash}}<div id="flash" class="flash {{.Kind}}">{{.Message}}
<a href="#" class="close">×</a></div>{{end}}{{end}}

{{define "login"}}<!DOCTYPE html>
<html><head><title>The Internet</title></head><body>
<div id="flash-messages">{{template "flash" .}}</div>
<h2>Login Page</h2>
<form id="login" action="/authenticate" method="post">
<label for="username">Username</label><input type="text" name="username" id="username">
<label for="password">Password</label><input type="password" name="password" id="password">
<button class="radius" type="submit">Login</button>
</form>
</body></html>{{end}}

{{define "secure"}}<!DOCTYPE html>
<html><head><title>The Internet</title></head><body>
<div id="flash-messages">{{template "flash" .}}</div>
<h2>Secure Area</h2>
<a class="button secondary radius" href="/logout">Logout</a>
</body></html>{{end}}

{{define "dynamic_loading"}}<!DOCTYPE html>
<html><head><title>The Internet</title></head><body>
<h3>Dynamically Loaded Page Elements</h3>
<div id="start"><button>Start</button></div>
<div id="loading" style="display:none">Loading...</div>
{{if eq .Example 1}}<div id="finish" style="display:none"><h4>Hello World!</h4></div>{{end}}
<script>
document.querySelector("#start button").addEventListener("click", function() {
  document.getElementById("start").style.display = "none";
  document.getElementById("loading").style.display = "block";
  setTimeout(function() {
    document.getElementById("loading").style.display = "none";
    {{if eq .Example 1}}document.getElementById("finish").style.display = "block";
    {{else}}var finish = document.createElement("div");
    finish.id = "finish";
    finish.innerHTML = "<h4>Hello World!</h4>";
    document.body.appendChild(finish);{{end}}
  }, {{.DelayMS}});
});
</script>
</body></html>{{end}}
`))
