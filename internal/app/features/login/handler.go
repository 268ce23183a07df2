// internal/app/features/login/handler.go
package login

import (
	"net/http"

	uierrors "github.com/dalemusser/homestay/internal/app/features/errors"
	"github.com/dalemusser/homestay/internal/app/system/auth"
	"github.com/dalemusser/homestay/internal/app/system/ratelimit"
	"github.com/dalemusser/homestay/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.uber.org/zap"
)

// AdminName is the display name stored in the admin session.
const AdminName = "Site admin"

type Handler struct {
	AdminHash  string // bcrypt hash of the admin password
	SessionMgr *auth.SessionManager
	Limiter    *ratelimit.LoginLimiter
	ErrLog     *uierrors.ErrorLogger
	Log        *zap.Logger
}

func NewHandler(adminHash string, sm *auth.SessionManager, limiter *ratelimit.LoginLimiter, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		AdminHash:  adminHash,
		SessionMgr: sm,
		Limiter:    limiter,
		ErrLog:     errLog,
		Log:        logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Template-data                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

type loginFormData struct {
	viewdata.BaseVM
	Error     string
	ReturnURL string
	Disabled  bool
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, status int, errMsg, returnURL string) {
	data := loginFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Sign in", ""),
		Error:     errMsg,
		ReturnURL: returnURL,
		Disabled:  h.AdminHash == "",
	}
	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	templates.Render(w, r, "login", data)
}

// ServeLoginForm handles GET /login.
func (h *Handler) ServeLoginForm(w http.ResponseWriter, r *http.Request) {
	ret := r.URL.Query().Get("return")
	if auth.IsAdmin(r) {
		http.Redirect(w, r, urlutil.SafeReturn(ret, "", "/dashboard"), http.StatusSeeOther)
		return
	}
	h.renderForm(w, r, http.StatusOK, "", ret)
}

// HandleLoginPost handles POST /login.
func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse login form failed", err, "Invalid form data.", "/login")
		return
	}
	ret := r.PostFormValue("return")

	if h.AdminHash == "" {
		h.renderForm(w, r, http.StatusServiceUnavailable, "Sign-in is not configured on this server.", ret)
		return
	}

	if ok, reason := h.Limiter.Check(r); !ok {
		h.Log.Warn("login rate limited", zap.String("ip", ratelimit.ClientIP(r)))
		h.renderForm(w, r, http.StatusTooManyRequests, reason, ret)
		return
	}

	if !auth.CheckPassword(h.AdminHash, r.PostFormValue("password")) {
		h.Log.Info("login failed", zap.String("ip", ratelimit.ClientIP(r)))
		h.renderForm(w, r, http.StatusUnauthorized, "That password is not correct.", ret)
		return
	}

	if err := h.SessionMgr.SignIn(w, r, AdminName); err != nil {
		h.ErrLog.LogServerError(w, r, "login: save session failed", err, "Unable to create session. Please try again.", "/login")
		return
	}
	h.Limiter.Reset(r)
	h.Log.Info("admin signed in", zap.String("ip", ratelimit.ClientIP(r)))

	http.Redirect(w, r, urlutil.SafeReturn(ret, "", "/dashboard"), http.StatusSeeOther)
}
