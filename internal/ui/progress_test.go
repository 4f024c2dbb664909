package ui

import (
	"strings"
	"testing"

	"phpfix/internal/driver"
)

func TestProgressModelTracksEvents(t *testing.T) {
	events := make(chan driver.Event)
	m := NewProgressModel("Fixing", events).(*progressModel)

	for _, ev := range []driver.Event{
		{File: "a.php", Status: driver.StatusQueued},
		{File: "b.php", Status: driver.StatusQueued},
		{File: "a.php", Status: driver.StatusWorking},
		{File: "a.php", Status: driver.StatusChanged},
	} {
		m.Update(eventMsg(ev))
	}

	if m.finished() != 1 || len(m.items) != 2 {
		t.Fatalf("finished=%d items=%d", m.finished(), len(m.items))
	}
	view := m.View()
	for _, want := range []string{"Fixing (1/2)", "a.php", "b.php", "1 changed, 0 clean, 0 cached, 0 failed"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}

	m.Update(doneMsg{})
	if !m.done || !strings.Contains(m.View(), "done: Fixing") {
		t.Fatalf("model did not finish:\n%s", m.View())
	}
}

func TestVisibleLimitsLongLists(t *testing.T) {
	m := NewProgressModel("Fixing", nil).(*progressModel)
	for i := range 30 {
		m.applyEvent(driver.Event{File: strings.Repeat("x", i+1) + ".php", Status: driver.StatusClean})
	}
	m.applyEvent(driver.Event{File: "busy.php", Status: driver.StatusWorking})
	vis := m.visible()
	if len(vis) == 0 || len(vis) > maxListed || vis[0].path != "busy.php" {
		t.Fatalf("unexpected visible list: %+v", vis)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("src/very/long/path/File.php", 10); got != "src/ver..." {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("a.php", 10); got != "a.php" {
		t.Fatalf("short value changed: %q", got)
	}
}
