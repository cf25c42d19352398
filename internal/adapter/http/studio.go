package http

import (
	"bytes"
	"embed"
	"html/template"
	"strings"
	"time"

	"cv-amplify/internal/domain"
	"cv-amplify/internal/usecase"
	"cv-amplify/pkg/ai/formatters"

	"github.com/gofiber/fiber/v2"
)

//go:embed templates/studio.html
var templatesFS embed.FS

var studioTpl = template.Must(template.New("studio.html").Funcs(template.FuncMap{
	"join": strings.Join,
}).ParseFS(templatesFS, "templates/studio.html"))

// MsgPreparing is shown while the session is still resolving.
const MsgPreparing = "Preparing the studio..."

type optionView struct {
	domain.Option
	Selected bool
}

type axisView struct {
	Axis    domain.Axis
	Title   string
	Options []optionView
}

type studioPage struct {
	Loading      bool
	Preparing    string
	AccountLabel string
	DemoBanner   string
	CanSignOut   bool
	Labels       formatters.Labels
	Draft        domain.ResumeDraft
	Axes         []axisView
	Preview      usecase.Preview
	Phase        string
	Error        string
}

// Studio renders the studio view. A POST carries the draft and filter
// selection as form values; action=improve also runs a generation.
func (h *Handler) Studio(c *fiber.Ctx) error {
	sess := SessionFrom(c)
	switch usecase.Gate(sess) {
	case usecase.GateRedirect:
		return c.Redirect(h.loginURL, fiber.StatusFound)
	case usecase.GateWait:
		return h.render(c, studioPage{Loading: true, Preparing: MsgPreparing})
	}

	studio := usecase.NewStudio(h.gen, usecase.WithGenerateTimeout(h.timeout), usecase.WithLogger(h.log))
	var selectErr error
	if c.Method() == fiber.MethodPost {
		for _, f := range domain.Fields {
			studio.SetField(f, c.FormValue(string(f)))
		}
		for _, axis := range domain.Axes {
			if id := c.FormValue(string(axis)); id != "" {
				if err := studio.Select(axis, id); err != nil && selectErr == nil {
					selectErr = err
				}
			}
		}
		if c.FormValue("action") == "improve" && selectErr == nil {
			start := time.Now()
			err := studio.Generate(c.UserContext())
			h.record(sess, studio.State().Filters, err, time.Since(start))
		}
	}

	st := studio.State()
	page := studioPage{
		AccountLabel: usecase.AccountLabel(sess),
		CanSignOut:   usecase.CanSignOut(sess),
		Labels:       formatters.DefaultLabels(),
		Draft:        st.Draft,
		Axes:         axisViews(st.Filters),
		Preview:      studio.Preview(),
		Phase:        st.Phase.String(),
		Error:        st.Error,
	}
	if usecase.ShowDemoBanner(sess) {
		page.DemoBanner = usecase.DemoBanner
	}
	if selectErr != nil {
		page.Error = domain.UserMessage(selectErr)
	}
	return h.render(c, page)
}

// Login is the default LOGIN_URL target. Sign-in itself happens at an
// external identity provider that sets the session cookie.
func (h *Handler) Login(c *fiber.Ctx) error {
	c.Type("html", "utf-8")
	return c.SendString(loginPage)
}

const loginPage = `<!doctype html>
<html><head><meta charset="utf-8"><title>Sign in · cv-amplify</title></head>
<body><main><h1>Sign in required</h1>
<p>Sign in through your identity provider, then return to <a href="/resume">the studio</a>.</p>
</main></body></html>
`

// Logout clears the session cookie.
func (h *Handler) Logout(c *fiber.Ctx) error {
	c.ClearCookie(SessionCookie)
	return c.Redirect("/", fiber.StatusFound)
}

func (h *Handler) render(c *fiber.Ctx, page studioPage) error {
	var buf bytes.Buffer
	if err := studioTpl.Execute(&buf, page); err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

func axisViews(sel domain.FilterSelection) []axisView {
	out := make([]axisView, 0, len(domain.Axes))
	for _, axis := range domain.Axes {
		v := axisView{Axis: axis, Title: strings.ToUpper(string(axis[:1])) + string(axis[1:])}
		for _, o := range domain.Catalog(axis) {
			v.Options = append(v.Options, optionView{Option: o, Selected: o.ID == sel.Selected(axis)})
		}
		out = append(out, v)
	}
	return out
}
