package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/hatchdotlol/geosignup/pkg/api"
	"github.com/hatchdotlol/geosignup/pkg/db"
	"github.com/hatchdotlol/geosignup/pkg/documents"
	"github.com/hatchdotlol/geosignup/pkg/emails"
	"github.com/hatchdotlol/geosignup/pkg/flow"
	"github.com/hatchdotlol/geosignup/pkg/kv"
	"github.com/hatchdotlol/geosignup/pkg/models"
	"github.com/hatchdotlol/geosignup/pkg/util"
	"github.com/joho/godotenv"
)

const registerMessage = "*%s has registered.* 👤"

func main() {
	godotenv.Load()

	util.InitConfig()

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:     os.Getenv("SENTRY_DSN"),
		Release: util.Config.Version,
	}); err != nil {
		log.Fatal(err)
	}
	defer sentry.Flush(time.Second * 5)

	if err := db.InitDB(util.Config.DBPath); err != nil {
		sentry.CaptureException(err)
		log.Fatal(err)
	}

	var users documents.Collection
	switch util.Config.DocStore {
	case "minio":
		if err := db.InitS3(context.Background()); err != nil {
			sentry.CaptureException(err)
			log.Fatal(err)
		}
		users = documents.NewObjectCollection(db.Objects, util.Config.Minio.Bucket, util.Config.Collection)
	default:
		users = documents.NewSQLCollection(db.Db, util.Config.Collection)
	}

	app := &flow.App{
		Users:              users,
		Local:              kv.NewSQLStore(db.Db),
		LocationKey:        util.Config.LocationKey,
		SurfaceErrorDetail: util.Config.SurfaceErrorDetail,
		OnSignup:           onSignup,
	}

	r := api.Router(api.NewServer(app, api.ConfiguredLocator()))

	sentry.CaptureMessage("Starting API")

	log.Printf("Starting server at %s\n", util.Config.Addr)
	if err := http.ListenAndServe(util.Config.Addr, r); err != nil {
		sentry.CaptureException(err)
		log.Println(err)
	}
}

func onSignup(rec models.SignupRecord) {
	go func() {
		util.LogMessage(fmt.Sprintf(registerMessage, rec.Username))
		if util.Config.Mail == nil {
			return
		}
		if err := emails.SendWelcomeEmail(rec.Username, rec.Email); err != nil {
			util.LogMessage(fmt.Sprintf("We could not send a welcome email to %s.", rec.Username))
			sentry.CaptureException(err)
		}
	}()
}
