package transfer

import (
	"bytes"
	"testing"
)

type write struct {
	command bool
	data    []byte
}

// fakeLink records writes and lets the test decide when each one
// completes, standing in for a transfer-complete interrupt.
type fakeLink struct {
	writes []write
	done   []func()
}

func (l *fakeLink) Start(command bool, p []byte, done func()) {
	l.writes = append(l.writes, write{command, append([]byte(nil), p...)})
	l.done = append(l.done, done)
}

func (l *fakeLink) complete() {
	d := l.done[0]
	l.done = l.done[1:]
	d()
}

func TestSendAddressingThenData(t *testing.T) {
	link := &fakeLink{}
	d := New(link)

	if !d.Ready() {
		t.Fatal("new driver not ready")
	}

	data := []byte{1, 2, 3}
	d.Send(3, 0x47, data)

	if d.Ready() {
		t.Error("ready while addressing command in flight")
	}
	if len(link.writes) != 1 {
		t.Fatalf("got %d writes, want 1", len(link.writes))
	}
	if !link.writes[0].command {
		t.Error("first write is not a command")
	}
	wantCmd := []byte{0xB3, 0x14, 0x07}
	if !bytes.Equal(link.writes[0].data, wantCmd) {
		t.Errorf("addressing = %#v, want %#v", link.writes[0].data, wantCmd)
	}

	// Completing the addressing command chains the data transfer.
	link.complete()
	if d.Ready() {
		t.Error("ready while data in flight")
	}
	if len(link.writes) != 2 {
		t.Fatalf("got %d writes, want 2", len(link.writes))
	}
	if link.writes[1].command {
		t.Error("second write is not data")
	}
	if !bytes.Equal(link.writes[1].data, data) {
		t.Errorf("data = %#v, want %#v", link.writes[1].data, data)
	}

	link.complete()
	if !d.Ready() {
		t.Error("not ready after data completed")
	}
}

func TestSendPageColumnEncoding(t *testing.T) {
	tests := []struct {
		page, column uint8
		want         []byte
	}{
		{0, 0, []byte{0xB0, 0x10, 0x00}},
		{7, 0, []byte{0xB7, 0x10, 0x00}},
		{1, 0x0F, []byte{0xB1, 0x10, 0x0F}},
		{2, 0x7F, []byte{0xB2, 0x17, 0x0F}},
	}

	for _, tt := range tests {
		link := &fakeLink{}
		d := New(link)
		d.Send(tt.page, tt.column, []byte{0})
		if !bytes.Equal(link.writes[0].data, tt.want) {
			t.Errorf("Send(%d, %#x) addressing = %#v, want %#v",
				tt.page, tt.column, link.writes[0].data, tt.want)
		}
	}
}

func TestInit(t *testing.T) {
	link := &fakeLink{}
	d := New(link)

	d.Init()
	if d.Ready() {
		t.Error("ready while init sequence in flight")
	}
	if len(link.writes) != 1 || !link.writes[0].command {
		t.Fatalf("init did not send one command write: %+v", link.writes)
	}
	if got := link.writes[0].data; got[0] != 0x40 || got[len(got)-1] != 0xAF {
		t.Errorf("init sequence = %#v", got)
	}

	link.complete()
	if !d.Ready() {
		t.Error("not ready after init completed")
	}
}

// fakeBus records SPI traffic interleaved with pin transitions.
type fakeBus struct {
	log *[]string
}

func (b fakeBus) Tx(w, r []byte) error {
	*b.log = append(*b.log, "tx")
	return nil
}

func (b fakeBus) Transfer(w byte) (byte, error) {
	return 0, nil
}

type fakePin struct {
	name string
	log  *[]string
}

func (p fakePin) High() { *p.log = append(*p.log, p.name+" high") }
func (p fakePin) Low()  { *p.log = append(*p.log, p.name+" low") }

func TestSPILink(t *testing.T) {
	var log []string
	l := NewSPILink(fakeBus{&log}, fakePin{"dc", &log}, fakePin{"cs", &log})

	doneCalled := false
	l.Start(true, []byte{0xB0}, func() { doneCalled = true })
	if !doneCalled {
		t.Error("done not called for synchronous link")
	}
	want := []string{"dc low", "cs low", "tx", "cs high"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("log = %v, want %v", log, want)
		}
	}

	log = log[:0]
	l.Start(false, []byte{1, 2}, func() {})
	if log[0] != "dc high" {
		t.Errorf("data write did not raise dc first: %v", log)
	}
}
