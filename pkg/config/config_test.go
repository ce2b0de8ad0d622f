package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Addr != "127.0.0.1:3003" || cfg.Server.Timeout != 15*time.Second {
		t.Fatalf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.Mongo.Collection != "blogs" || cfg.JWT.TTL != time.Hour {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.CORS.Origins, []string{"*"}) {
		t.Fatalf("unexpected cors origins: %v", cfg.CORS.Origins)
	}
	if !strings.Contains(cfg.MySQL.DSN, "charset=utf8mb4") {
		t.Fatalf("expected utf8mb4 connection charset, but dsn was %q", cfg.MySQL.DSN)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir, err := ioutil.TempDir("", "bloglist")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "config.yaml")
	content := []byte(`server:
  addr: ":8080"
mongo:
  database: bloglist_test
jwt:
  ttl: 30m
cors:
  origins:
    - http://localhost:3000
`)
	if err = ioutil.WriteFile(file, content, 0600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	os.Setenv("BLOGLIST_REDIS_DB", "3")
	os.Setenv("BLOGLIST_MONGO_DATABASE", "from_env")
	defer os.Unsetenv("BLOGLIST_REDIS_DB")
	defer os.Unsetenv("BLOGLIST_MONGO_DATABASE")

	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected addr from file, but was %q", cfg.Server.Addr)
	}
	if cfg.JWT.TTL != 30*time.Minute {
		t.Errorf("expected ttl from file, but was %v", cfg.JWT.TTL)
	}
	if !reflect.DeepEqual(cfg.CORS.Origins, []string{"http://localhost:3000"}) {
		t.Errorf("unexpected cors origins: %v", cfg.CORS.Origins)
	}
	if cfg.Redis.DB != 3 {
		t.Errorf("expected redis db from env, but was %d", cfg.Redis.DB)
	}
	if cfg.Mongo.Database != "from_env" {
		t.Errorf("expected env to override file, but was %q", cfg.Mongo.Database)
	}
	if cfg.Mongo.Collection != "blogs" {
		t.Errorf("expected default collection, but was %q", cfg.Mongo.Collection)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(os.TempDir(), "bloglist-missing.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
