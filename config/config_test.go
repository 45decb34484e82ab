package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestNew(t *testing.T) {
	path := writeConfig(t, `
app:
  env: test
  debug: true
mysql:
  host: 127.0.0.1
  port: 3306
jwt:
  secret: s
  expire: 3600
server:
  http: 8080
`)

	conf := New(path)
	if conf.App.Env != "test" || !conf.Debug() {
		t.Fatalf("app section = %+v", conf.App)
	}
	if conf.Jwt.Expire != 3600 {
		t.Fatalf("jwt expire = %d", conf.Jwt.Expire)
	}
	if conf.Server.Http != 8080 {
		t.Fatalf("server port = %d", conf.Server.Http)
	}
}

// 解析失败的 panic 信息要带上真实的解析错误，不能是空错误
func TestNewInvalidYaml(t *testing.T) {
	path := writeConfig(t, "app: [unclosed")

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for invalid yaml")
		}
		msg, ok := r.(string)
		if !ok {
			t.Fatalf("panic value %T, want string", r)
		}
		if !strings.Contains(msg, "yaml") {
			t.Fatalf("panic message %q does not carry the parse error", msg)
		}
	}()
	New(path)
}

func TestNewMissingFile(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for missing file")
		}
	}()
	New(filepath.Join(t.TempDir(), "nope.yaml"))
}

func TestMySQLDsn(t *testing.T) {
	m := &MySQL{Host: "db", Port: 3306, Username: "u", Password: "p", Database: "warble"}
	dsn := m.Dsn()
	if !strings.Contains(dsn, "u:p@tcp(db:3306)/warble") {
		t.Fatalf("dsn = %q", dsn)
	}
	// 未配置字符集时默认 utf8mb4
	if !strings.Contains(dsn, "charset=utf8mb4") {
		t.Fatalf("dsn = %q, want utf8mb4 default", dsn)
	}
}
