package service

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/hakwonlab/acadpanel/database"
	"github.com/hakwonlab/acadpanel/logger"
	"github.com/hakwonlab/acadpanel/web/cache"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/require"
)

var testRedisOnce sync.Once

// setupTest opens a throwaway database and flushes the shared cache so
// cached settings and permission tables from earlier tests cannot leak in.
func setupTest(t *testing.T) {
	t.Helper()

	testRedisOnce.Do(func() {
		logger.InitLogger(logging.ERROR)
		if err := cache.InitRedis(""); err != nil {
			t.Fatal(err)
		}
	})
	require.NoError(t, cache.DeletePattern("*"))

	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.InitDB(dbPath))
}

// seedStudent registers a student for tests that need one.
func seedStudent(t *testing.T, orgId int, name string) int {
	t.Helper()
	studentService := StudentService{}
	student, err := studentService.AddStudent(orgId, &StudentForm{Name: name})
	require.NoError(t, err)
	return student.Id
}

// seedOrg registers a second organization and returns its id.
func seedOrg(t *testing.T, username string) int {
	t.Helper()
	orgService := OrgService{}
	org, _, err := orgService.Register(&RegisterForm{
		Username: username,
		Password: "secret-password",
		Name:     "Second Owner",
		OrgName:  "Second Academy",
	})
	require.NoError(t, err)
	return org.Id
}
