package logging_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/travbench/logging"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]logging.Level{
		"":        logging.InfoLevel,
		"debug":   logging.DebugLevel,
		"INFO":    logging.InfoLevel,
		"Warning": logging.WarningLevel,
		"warn":    logging.WarningLevel,
		"error":   logging.ErrorLevel,
	}
	for in, want := range cases {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logging.ParseLevel("verbose")
	assert.ErrorIs(t, err, logging.ErrUnknownLevel)
}

func TestLogger_Threshold(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New(&buf, logging.WarningLevel)
	l.Debugf("d %d", 1)
	l.Infof("i %d", 2)
	l.Warningf("w %d", 3)
	l.Errorf("e %d", 4)

	out := buf.String()
	assert.NotContains(t, out, "DEBUG")
	assert.NotContains(t, out, "INFO")
	assert.Contains(t, out, " WARNING w 3")
	assert.Contains(t, out, " ERROR e 4")
}

func TestLogger_NilAndDiscard(t *testing.T) {
	var l *logging.Logger
	assert.NotPanics(t, func() { l.Infof("ignored") })
	assert.NotPanics(t, func() { logging.Discard().Errorf("ignored") })
}

func TestConfig_NewLogger_Fallback(t *testing.T) {
	var buf bytes.Buffer
	cfg := &logging.Config{Level: "debug"}
	l, err := cfg.NewLogger(&buf)
	require.NoError(t, err)
	l.Debugf("hello")
	assert.Contains(t, buf.String(), " DEBUG hello")
	assert.NoError(t, l.Close())

	_, err = (&logging.Config{Level: "loud"}).NewLogger(&buf)
	assert.ErrorIs(t, err, logging.ErrUnknownLevel)

	var nilCfg *logging.Config
	l, err = nilCfg.NewLogger(&buf)
	require.NoError(t, err)
	assert.Equal(t, logging.InfoLevel, l.Level())
}

func TestConfig_NewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "travbench.log")
	cfg := &logging.Config{Logfile: path, MaxSize: 1, MaxAge: 1}
	l, err := cfg.NewLogger(os.Stderr)
	require.NoError(t, err)
	l.Infof("to file")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), " INFO to file")
}
