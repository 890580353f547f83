package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "wuxing-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "wuxing")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/wuxing")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

func fixturePath(name string) string {
	abs, _ := filepath.Abs(filepath.Join("../../testdata/charts", name))
	return abs
}

func run(t *testing.T, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return string(out), exitCode
}

type scoreJSON struct {
	Pillars []string       `json:"pillars"`
	Season  string         `json:"season"`
	Scores  map[string]int `json:"scores"`
	Exempt  []string       `json:"exempt"`
}

// --- Score Tests ---

func TestE2E_Score(t *testing.T) {
	out, code := run(t, "score", "甲子", "乙丑", "丙寅", "丁卯", "--path", t.TempDir())
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "wuxing")
	assert.Contains(t, out, "甲子 乙丑 丙寅 丁卯")
}

func TestE2E_ScoreJSON(t *testing.T) {
	out, code := run(t, "score", "JiaYin BingWu DingMao WuXu", "--json", "--path", t.TempDir())
	require.Equal(t, 0, code, out)

	var res scoreJSON
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "summer", res.Season)
	assert.Len(t, res.Scores, 5)
	assert.Equal(t, 1, res.Scores["water"], "absent water scores 1")
	for e, s := range res.Scores {
		assert.GreaterOrEqual(t, s, 1, e)
		assert.LessOrEqual(t, s, 95, e)
	}
}

func TestE2E_ScoreMalformed(t *testing.T) {
	out, code := run(t, "score", "甲子", "乙丑", "--path", t.TempDir())
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "expected 4 stem/branch pairs")
}

func TestE2E_ScoreCI(t *testing.T) {
	_, code := run(t, "score", "壬子 癸亥 壬子 癸亥", "--ci", "--path", fixturePath("strict"))
	assert.Equal(t, 1, code, "should exit 1 when below minimum")
}

func TestE2E_ScoreDeterministic(t *testing.T) {
	first, _ := run(t, "score", "甲寅 丙午 戊戌 庚申", "--json", "--path", t.TempDir())
	second, _ := run(t, "score", "甲寅 丙午 戊戌 庚申", "--json", "--path", t.TempDir())
	assert.Equal(t, first, second)
}

// --- Check Tests ---

func TestE2E_CheckAll(t *testing.T) {
	out, code := run(t, "check", fixturePath("balanced"))
	assert.Equal(t, 0, code, out)
	assert.Contains(t, out, "spring-wood")
	assert.Contains(t, out, "winter-water")
}

func TestE2E_CheckJSON(t *testing.T) {
	out, code := run(t, "check", fixturePath("balanced"), "--json")
	require.Equal(t, 0, code, out)

	var report struct {
		Charts []struct {
			Name   string    `json:"name"`
			Result scoreJSON `json:"result"`
		} `json:"charts"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Charts, 4)
	assert.Equal(t, "spring-wood", report.Charts[0].Name)
	assert.Equal(t, "spring", report.Charts[0].Result.Season)
	assert.Equal(t, "transitional_earth", report.Charts[3].Result.Season)
}

func TestE2E_CheckCI(t *testing.T) {
	out, code := run(t, "check", fixturePath("strict"), "--ci")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "winter-water: fire 1 < 30")
}

// --- Rules Test ---

func TestE2E_Rules(t *testing.T) {
	out, code := run(t, "rules", "--kind", "harm")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "子未")
}

// --- Version Test ---

func TestE2E_Version(t *testing.T) {
	out, code := run(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "wuxing")
}
