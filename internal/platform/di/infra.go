// internal/platform/di/infra.go
package di

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	secretmanagerpb "cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"cloud.google.com/go/storage"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	appcfg "github.com/Fizxxc/digital-store/internal/infra/config"
	firestoreinfra "github.com/Fizxxc/digital-store/internal/infra/firestore"
)

// Infra is shared runtime infrastructure for DI.
// - owns external clients (Firestore/FirebaseAuth/GCS/SecretManager)
// - owns env/config-resolved runtime settings (bucket name, mail settings)
//
// IMPORTANT:
// Infra must NOT depend on routers, handlers, or usecases.
type Infra struct {
	// Config
	Config    *appcfg.Config
	ProjectID string

	// Clients (owned; Close-managed)
	Firestore     *firestoreinfra.ClientWrapper
	GCS           *storage.Client
	FirebaseApp   *firebase.App
	FirebaseAuth  *firebaseauth.Client
	SecretManager *secretmanager.Client

	// Runtime settings (resolved once)
	ProductImageBucket string
	SendGridAPIKey     string
	MailFromAddress    string
	AllowedOrigin      string
}

// NewInfra initializes shared infra.
// Firestore is strict (return error).
// GCS, Firebase/Auth and SecretManager are best-effort (warn + continue):
// the storefront can serve its catalog without them.
func NewInfra(ctx context.Context) (*Infra, error) {
	cfg := appcfg.Load()
	if cfg == nil {
		return nil, errors.New("di.infra: config is nil")
	}

	projectID := resolveProjectID(cfg)
	if projectID == "" {
		return nil, errors.New("di.infra: projectID is empty (set FIRESTORE_PROJECT_ID or GOOGLE_CLOUD_PROJECT)")
	}

	inf := &Infra{
		Config:          cfg,
		ProjectID:       projectID,
		MailFromAddress: cfg.MailFromAddress,
		AllowedOrigin:   cfg.AllowedOrigin,
	}

	// Credentials file (optional; mainly for local dev)
	credFile := strings.TrimSpace(cfg.FirestoreCredentialsFile)
	if credFile == "" {
		credFile = strings.TrimSpace(cfg.GCPCreds) // GOOGLE_APPLICATION_CREDENTIALS
	}
	var clientOpts []option.ClientOption
	if credFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(credFile))
		log.Printf("[di.infra] Using credentials file for GCP clients: %s", redactPath(credFile))
	} else {
		log.Printf("[di.infra] Using Application Default Credentials (no credentials file configured)")
	}

	// 1) Firestore (strict)
	{
		fs, err := firestoreinfra.NewClient(ctx, inf.ProjectID, credFile)
		if err != nil {
			return nil, fmt.Errorf("di.infra: firestore init failed (project=%s): %w", inf.ProjectID, err)
		}
		if err := fs.Ping(ctx); err != nil {
			log.Printf("[di.infra] WARN: firestore ping failed: %v", err)
		}
		inf.Firestore = fs
	}

	// 2) GCS (best-effort; only product images need it)
	{
		var gcsClient *storage.Client
		var err error
		if len(clientOpts) > 0 {
			gcsClient, err = storage.NewClient(ctx, clientOpts...)
		} else {
			gcsClient, err = storage.NewClient(ctx)
		}
		if err != nil {
			log.Printf("[di.infra] WARN: storage.NewClient failed: %v (product image features disabled)", err)
			gcsClient = nil
		}
		inf.GCS = gcsClient
	}

	// 3) Firebase App/Auth (best-effort)
	{
		var fbApp *firebase.App
		var err error

		fbCfg := &firebase.Config{ProjectID: inf.ProjectID}
		if len(clientOpts) > 0 {
			fbApp, err = firebase.NewApp(ctx, fbCfg, clientOpts...)
		} else {
			fbApp, err = firebase.NewApp(ctx, fbCfg)
		}

		if err != nil {
			log.Printf("[di.infra] WARN: firebase app init failed: %v", err)
		} else {
			inf.FirebaseApp = fbApp
			authClient, err := fbApp.Auth(ctx)
			if err != nil {
				log.Printf("[di.infra] WARN: firebase auth init failed: %v", err)
			} else {
				inf.FirebaseAuth = authClient
				log.Printf("[di.infra] Firebase Auth initialized")
			}
		}
	}

	// 4) Secret Manager (best-effort; only SendGrid key resolution needs it)
	{
		var sm *secretmanager.Client
		var err error
		if len(clientOpts) > 0 {
			sm, err = secretmanager.NewClient(ctx, clientOpts...)
		} else {
			sm, err = secretmanager.NewClient(ctx)
		}
		if err != nil {
			log.Printf("[di.infra] WARN: secretmanager.NewClient failed: %v (secret-backed settings disabled)", err)
			sm = nil
		}
		inf.SecretManager = sm
	}

	// 5) Runtime settings (resolve once)
	inf.ProductImageBucket = strings.TrimSpace(cfg.ProductImageBucket)
	if inf.ProductImageBucket == "" {
		log.Printf("[di.infra] WARN: PRODUCT_IMAGE_BUCKET is empty (console image upload disabled)")
	}
	inf.SendGridAPIKey = inf.resolveSendGridKey(ctx)
	if inf.SendGridAPIKey == "" {
		log.Printf("[di.infra] SendGrid not configured (order status mail disabled)")
	}

	return inf, nil
}

// resolveSendGridKey prefers the env var and falls back to Secret Manager
// when SENDGRID_API_KEY_SECRET names a secret.
func (i *Infra) resolveSendGridKey(ctx context.Context) string {
	if key := strings.TrimSpace(i.Config.SendGridAPIKey); key != "" {
		return key
	}

	secretID := strings.TrimSpace(i.Config.SendGridAPIKeySecret)
	if secretID == "" || i.SecretManager == nil {
		return ""
	}

	name := fmt.Sprintf("projects/%s/secrets/%s/versions/latest", i.ProjectID, secretID)
	resp, err := i.SecretManager.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		log.Printf("[di.infra] WARN: AccessSecretVersion failed (%s): %v", name, err)
		return ""
	}
	if resp == nil || resp.Payload == nil {
		log.Printf("[di.infra] WARN: empty secret payload (%s)", name)
		return ""
	}
	log.Printf("[di.infra] SendGrid API key resolved from Secret Manager")
	return strings.TrimSpace(string(resp.Payload.Data))
}

func (i *Infra) Close() error {
	if i == nil {
		return nil
	}
	if i.Firestore != nil {
		_ = i.Firestore.Close() // ClientWrapper tolerates a nil inner client
	}
	if i.GCS != nil {
		_ = i.GCS.Close()
	}
	if i.SecretManager != nil {
		_ = i.SecretManager.Close()
	}
	return nil
}

func resolveProjectID(cfg *appcfg.Config) string {
	// Priority:
	// 1) cfg.FirestoreProjectID (resolved by config.Load)
	// 2) FIRESTORE_PROJECT_ID
	// 3) GCP_PROJECT_ID
	// 4) GOOGLE_CLOUD_PROJECT (often set in Cloud Run)
	// 5) FIREBASE_PROJECT_ID (fallback)
	if cfg != nil {
		if v := strings.TrimSpace(cfg.FirestoreProjectID); v != "" {
			return v
		}
	}

	for _, k := range []string{
		"FIRESTORE_PROJECT_ID",
		"GCP_PROJECT_ID",
		"GOOGLE_CLOUD_PROJECT",
		"FIREBASE_PROJECT_ID",
	} {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}

	return ""
}

func redactPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	p = strings.ReplaceAll(p, "\\", "/")
	parts := strings.Split(p, "/")
	if len(parts) == 0 {
		return "***"
	}
	last := parts[len(parts)-1]
	if last == "" {
		return "***"
	}
	return "***" + "/" + last
}
