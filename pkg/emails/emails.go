package emails

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	htmlTmpl "html/template"
	txtTmpl "text/template"

	"github.com/hatchdotlol/geosignup/pkg/util"
	gomail "gopkg.in/mail.v2"
)

var ErrMailDisabled = errors.New("mail is not configured")

var emailSubjects = map[string]string{
	"welcome": "Welcome aboard",
}

type EmailTmplVars struct {
	PlatformName     string
	PlatformFrontend string

	FromName    string
	FromAddress string

	Subject   string
	ToName    string
	ToAddress string
}

//go:embed templates/*
var templates embed.FS

// Render builds the plain text and html bodies of a templated email.
func Render(tmplName string, vars *EmailTmplVars) (string, string, error) {
	var txtBuf, htmlBuf bytes.Buffer

	tt, err := txtTmpl.ParseFS(templates, "templates/base.txt", fmt.Sprintf("templates/%s.txt", tmplName))
	if err != nil {
		return "", "", err
	}
	if err := tt.ExecuteTemplate(&txtBuf, "base.txt", vars); err != nil {
		return "", "", err
	}

	ht, err := htmlTmpl.ParseFS(templates, "templates/base.html", fmt.Sprintf("templates/%s.html", tmplName))
	if err != nil {
		return "", "", err
	}
	if err := ht.ExecuteTemplate(&htmlBuf, "base.html", vars); err != nil {
		return "", "", err
	}

	return txtBuf.String(), htmlBuf.String(), nil
}

func SendEmail(tmplName, toName, toAddress string) error {
	cfg := util.Config.Mail
	if cfg == nil {
		return ErrMailDisabled
	}

	vars := EmailTmplVars{
		PlatformName:     cfg.PlatformName,
		PlatformFrontend: cfg.PlatformFrontend,

		FromName:    cfg.FromName,
		FromAddress: cfg.FromAddress,

		Subject:   emailSubjects[tmplName],
		ToName:    toName,
		ToAddress: toAddress,
	}

	txt, html, err := Render(tmplName, &vars)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", vars.FromAddress, vars.FromName)
	m.SetAddressHeader("To", vars.ToAddress, vars.ToName)
	m.SetHeader("Subject", vars.Subject)

	m.SetBody("text/plain", txt)
	m.AddAlternative("text/html", html)

	return gomail.NewDialer(
		cfg.EmailSMTPHost,
		cfg.EmailSMTPPort,
		cfg.EmailSMTPUsername,
		cfg.EmailSMTPPassword,
	).DialAndSend(m)
}

func SendWelcomeEmail(name, email string) error {
	return SendEmail("welcome", name, email)
}
