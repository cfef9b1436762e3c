package bitdump

import "testing"

func TestDump(t *testing.T) {
	out, err := Dump([]byte{0xf0, 0x0f}, Config{})
	if err != nil {
		t.Error(err)
		return
	}

	expected := "Buffer    = 2 bytes (16 bits)\n" +
		"GroupBits = 8\n\n" +
		"       0  11110000 00001111\n"

	if out != expected {
		t.Errorf("expected:\n%v\ngot:\n%v", expected, out)
	}
}

func TestDumpMultipleLines(t *testing.T) {
	out, err := Dump([]byte{1, 2, 3, 4, 5}, Config{})
	if err != nil {
		t.Error(err)
		return
	}

	expected := "Buffer    = 5 bytes (40 bits)\n" +
		"GroupBits = 8\n\n" +
		"       0  00000001 00000010 00000011 00000100\n" +
		"      32  00000101\n"

	if out != expected {
		t.Errorf("expected:\n%v\ngot:\n%v", expected, out)
	}
}

func TestDumpUnalignedGroups(t *testing.T) {
	out, err := Dump([]byte{0xf0}, Config{GroupBits: 3})
	if err != nil {
		t.Error(err)
		return
	}

	// 8 bits in groups of 3: the final group carries the 2 leftover bits
	expected := "Buffer    = 1 bytes (8 bits)\n" +
		"GroupBits = 3\n\n" +
		"       0  111 100 00\n"

	if out != expected {
		t.Errorf("expected:\n%v\ngot:\n%v", expected, out)
	}
}

func TestDumpMaxBits(t *testing.T) {
	out, err := Dump([]byte{0xff, 0xff}, Config{MaxBits: 4})
	if err != nil {
		t.Error(err)
		return
	}

	expected := "Buffer    = 2 bytes (16 bits)\n" +
		"GroupBits = 8\n\n" +
		"       0  1111\n" +
		"\n(12 more bits)\n"

	if out != expected {
		t.Errorf("expected:\n%v\ngot:\n%v", expected, out)
	}
}

func TestDumpRejectsBadConfig(t *testing.T) {
	cases := []Config{
		{GroupBits: -1},
		{GroupBits: 65},
		{Groups: -2},
		{MaxBits: -8},
	}

	for _, c := range cases {
		if _, err := Dump([]byte{0}, c); err == nil {
			t.Errorf("expected config %+v to be rejected", c)
		}
	}
}
