package history

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/sobadon/wappuradio/domain/model/history"
)

func Test_write(t *testing.T) {
	helsinki := time.FixedZone("EEST", 3*60*60)
	entries := []history.Entry{
		{UUID: "2", Song: "Eppu Normaali - Murheellisten laulujen maa", HeardAt: time.Date(2025, 4, 30, 21, 5, 0, 0, time.UTC)},
		{UUID: "1", Song: "Popeda - Kuuma kesä", HeardAt: time.Date(2025, 4, 30, 20, 58, 0, 0, time.UTC)},
	}

	var buf bytes.Buffer
	if err := write(&buf, entries, helsinki); err != nil {
		t.Fatalf("write() error = %v", err)
	}
	want := "2025-05-01 00.05  Eppu Normaali - Murheellisten laulujen maa\n" +
		"2025-04-30 23.58  Popeda - Kuuma kesä\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("write() mismatch (-want +got):\n%s", diff)
	}
}
