package hosting

import (
	"context"
	"net/http"
	"strings"
	"unicode/utf8"

	uierrors "github.com/dalemusser/homestay/internal/app/features/errors"
	"github.com/dalemusser/homestay/internal/app/system/auth"
	"github.com/dalemusser/homestay/internal/app/system/htmlsanitize"
	"github.com/dalemusser/homestay/internal/app/system/ratelimit"
	"github.com/dalemusser/homestay/internal/app/system/timeouts"
	"github.com/dalemusser/homestay/internal/app/system/viewdata"
	"github.com/dalemusser/homestay/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/validate"
	"go.uber.org/zap"
)

// Field limits for the enquiry form.
const (
	maxNameLen    = 100
	maxPhoneLen   = 30
	maxMessageLen = 2000
)

// EnquiryCreator stores a submitted enquiry and returns it with its
// reference filled in.
type EnquiryCreator interface {
	Create(ctx context.Context, e models.HostEnquiry) (models.HostEnquiry, error)
}

// Handler serves the "become a host" page and its enquiry form.
type Handler struct {
	Enquiries  EnquiryCreator
	Limiter    *ratelimit.FormLimiter
	SessionMgr *auth.SessionManager
	ErrLog     *uierrors.ErrorLogger
	Log        *zap.Logger
}

func NewHandler(enquiries EnquiryCreator, limiter *ratelimit.FormLimiter, sm *auth.SessionManager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Enquiries:  enquiries,
		Limiter:    limiter,
		SessionMgr: sm,
		ErrLog:     errLog,
		Log:        logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Template-data                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

type locationOption struct {
	Value    string
	Label    string
	Selected bool
}

type formData struct {
	viewdata.BaseVM
	Form      EnquiryForm
	Errors    map[string]string
	Locations []locationOption
}

// EnquiryForm is the submitted form, trimmed and stripped of markup.
type EnquiryForm struct {
	FullName string
	Email    string
	Phone    string
	Location string
	Message  string
}

// ParseEnquiryForm reads the enquiry fields from a parsed request form.
func ParseEnquiryForm(r *http.Request) EnquiryForm {
	return EnquiryForm{
		FullName: htmlsanitize.PlainText(r.PostFormValue("full_name")),
		Email:    strings.ToLower(strings.TrimSpace(r.PostFormValue("email"))),
		Phone:    htmlsanitize.PlainText(r.PostFormValue("phone")),
		Location: strings.TrimSpace(r.PostFormValue("location")),
		Message:  htmlsanitize.PlainText(r.PostFormValue("message")),
	}
}

// Validate returns field errors keyed by form field name. An empty map
// means the form is acceptable.
func (f EnquiryForm) Validate() map[string]string {
	errs := map[string]string{}
	switch {
	case f.FullName == "":
		errs["full_name"] = "Please tell us your name."
	case utf8.RuneCountInString(f.FullName) > maxNameLen:
		errs["full_name"] = "Name is too long."
	}
	if f.Email == "" || !validate.SimpleEmailValid(f.Email) {
		errs["email"] = "Please enter a valid email address."
	}
	if utf8.RuneCountInString(f.Phone) > maxPhoneLen {
		errs["phone"] = "Phone number is too long."
	}
	if _, ok := models.ParseLocation(f.Location); !ok {
		errs["location"] = "Please choose the town you live in."
	}
	if utf8.RuneCountInString(f.Message) > maxMessageLen {
		errs["message"] = "Message is too long."
	}
	return errs
}

// Enquiry converts a validated form into the stored model.
func (f EnquiryForm) Enquiry(clientIP string) models.HostEnquiry {
	loc, _ := models.ParseLocation(f.Location)
	return models.HostEnquiry{
		FullName: f.FullName,
		Email:    f.Email,
		Phone:    f.Phone,
		Location: loc,
		Message:  f.Message,
		ClientIP: clientIP,
	}
}

func locationOptions(selected string) []locationOption {
	sel, _ := models.ParseLocation(selected)
	locs := models.Locations()
	out := make([]locationOption, len(locs))
	for i, loc := range locs {
		out[i] = locationOption{Value: loc.Slug(), Label: string(loc), Selected: loc == sel}
	}
	return out
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, form EnquiryForm, errs map[string]string, flash string) {
	base := viewdata.NewBaseVM(r, "Become a host", "Share your home with an international student or traveller. Send us an enquiry and a local coordinator will be in touch.")
	base.IsAdmin = auth.IsAdmin(r)
	base.Flash = flash
	templates.Render(w, r, "hosting", formData{
		BaseVM:    base,
		Form:      form,
		Errors:    errs,
		Locations: locationOptions(form.Location),
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /hosting                                                                |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeForm(w http.ResponseWriter, r *http.Request) {
	flash := ""
	if h.SessionMgr != nil {
		flash = h.SessionMgr.PopFlash(w, r)
	}
	form := EnquiryForm{Location: r.URL.Query().Get("location")}
	h.render(w, r, form, nil, flash)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /hosting                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse enquiry form failed", err, "Invalid form data.", "/hosting")
		return
	}
	form := ParseEnquiryForm(r)

	if ok, reason := h.Limiter.Check(r, form.Email); !ok {
		h.Log.Warn("enquiry rate limited",
			zap.String("ip", ratelimit.ClientIP(r)))
		uierrors.RenderTooManyRequests(w, r, reason, "/hosting")
		return
	}

	if errs := form.Validate(); len(errs) > 0 {
		w.WriteHeader(http.StatusUnprocessableEntity)
		h.render(w, r, form, errs, "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	saved, err := h.Enquiries.Create(ctx, form.Enquiry(ratelimit.ClientIP(r)))
	if err != nil {
		h.ErrLog.LogServerError(w, r, "insert enquiry failed", err, "We couldn't save your enquiry. Please try again shortly.", "/hosting")
		return
	}
	h.Log.Info("host enquiry received",
		zap.String("reference", saved.Reference),
		zap.String("location", string(saved.Location)))

	msg := "Thanks " + saved.FullName + "! Your enquiry reference is " + saved.Reference + ". A coordinator will be in touch within two working days."
	if h.SessionMgr != nil {
		if err := h.SessionMgr.AddFlash(w, r, msg); err != nil {
			h.Log.Warn("enquiry: save flash", zap.Error(err))
		}
	}
	http.Redirect(w, r, "/hosting", http.StatusSeeOther)
}
