// Package db opens the PostgreSQL connection pool used by every entry point.
// The DSN either comes straight from configuration or is assembled from
// AWS SSM Parameter Store, which is where deployed environments keep the
// database credentials.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"path"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/mkalns/samplestore/internal/server/config"
)

// ssmAPI is the slice of the SSM client used here, extracted so tests can
// substitute their own.
type ssmAPI interface {
	GetParameters(ctx context.Context, params *ssm.GetParametersInput, optFns ...func(*ssm.Options)) (*ssm.GetParametersOutput, error)
}

// Connect opens and pings a pgx-backed *sql.DB. When the configured DSN is
// empty, credentials are resolved from SSM under cfg.SSMPrefix.
func Connect(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	dsn := cfg.DatabaseDSN
	if dsn == "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading aws config: %w", err)
		}
		dsn, err = resolveDSN(ctx, ssm.NewFromConfig(awsCfg), cfg.SSMPrefix)
		if err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(cfg.DatabaseMaxConns)
	db.SetMaxIdleConns(cfg.DatabaseMaxConns)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

// resolveDSN assembles a PostgreSQL DSN from the five parameters stored
// under prefix: host, port, name, username and password. The password is a
// SecureString, so decryption is requested for the whole batch.
func resolveDSN(ctx context.Context, client ssmAPI, prefix string) (string, error) {
	if prefix == "" {
		return "", fmt.Errorf("no database DSN and no SSM prefix configured")
	}

	names := []string{
		path.Join(prefix, "host"),
		path.Join(prefix, "port"),
		path.Join(prefix, "name"),
		path.Join(prefix, "username"),
		path.Join(prefix, "password"),
	}

	out, err := client.GetParameters(ctx, &ssm.GetParametersInput{
		Names:          names,
		WithDecryption: ptr(true),
	})
	if err != nil {
		return "", fmt.Errorf("reading ssm parameters: %w", err)
	}
	if len(out.InvalidParameters) > 0 {
		return "", fmt.Errorf("missing ssm parameters: %v", out.InvalidParameters)
	}

	values := make(map[string]string, len(out.Parameters))
	for _, p := range out.Parameters {
		if p.Name != nil && p.Value != nil {
			values[path.Base(*p.Name)] = *p.Value
		}
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(values["username"], values["password"]),
		Host:   fmt.Sprintf("%s:%s", values["host"], values["port"]),
		Path:   "/" + values["name"],
	}
	return u.String(), nil
}

func ptr[T any](v T) *T { return &v }
