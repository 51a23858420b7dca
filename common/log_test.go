package common

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/inconshreveable/log15"
	"github.com/stretchr/testify/suite"
)

type testLog struct {
	suite.Suite
}

func (t *testLog) TestFormatter() {
	for _, f := range []string{"", "json", "JSON", "terminal"} {
		_, err := LogFormatter(f)
		t.NoError(err, f)
	}

	_, err := LogFormatter("xml")
	t.Error(err)
}

func (t *testLog) TestJSONFormat() {
	r := &log15.Record{
		Time: time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC),
		Lvl:  log15.LvlInfo,
		Msg:  "showme",
		Ctx:  []interface{}{"error", errors.New("findme"), "elapsed", time.Second, "odd"},
		KeyNames: log15.RecordKeyNames{
			Time: "t",
			Msg:  "msg",
			Lvl:  "lvl",
		},
	}

	b := JSONFormatEx(false, true).Format(r)
	t.Equal(byte('\n'), b[len(b)-1])

	var m map[string]interface{}
	t.NoError(json.Unmarshal(b, &m))
	t.Equal("showme", m["msg"])
	t.Equal("info", m["lvl"])
	t.Equal("findme", m["error"])
	t.Equal("1s", m["elapsed"])
	t.Contains(m, "odd")
	t.Contains(m, "t")
}

func TestLog(t *testing.T) {
	suite.Run(t, new(testLog))
}
