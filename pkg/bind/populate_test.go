package bind

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbind/pkg/dom"
	"github.com/goliatone/go-formbind/pkg/testsupport"
)

func quietBinder(options ...Option) *Binder {
	options = append(options, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	return New(options...)
}

func TestPopulate_TextInputs(t *testing.T) {
	body := testsupport.Container(t, `
		<input type="text" name="author" value="stale">
		<input type="hidden" name="token">
		<input type="number" name="count">
	`)

	err := quietBinder().Populate(body, map[string]any{
		"author": "Ada",
		"token":  12345,
		"count":  nil,
	})
	if err != nil {
		t.Fatalf("populate: %v", err)
	}

	if got := testsupport.FindKey(t, body, "author").Value(); got != "Ada" {
		t.Fatalf("author: want %q, got %q", "Ada", got)
	}
	if got := testsupport.FindKey(t, body, "token").Value(); got != "12345" {
		t.Fatalf("token: want %q, got %q", "12345", got)
	}
	if got := testsupport.FindKey(t, body, "count").Value(); got != "" {
		t.Fatalf("nil value: want empty, got %q", got)
	}
}

func TestPopulate_UnknownKeyTouchesNothing(t *testing.T) {
	markup := `<input type="text" name="known" value="kept">`
	body := testsupport.Container(t, markup)
	before := testsupport.Render(t, body)

	if err := quietBinder().Populate(body, map[string]any{"missing": "x"}); err != nil {
		t.Fatalf("populate: %v", err)
	}

	if after := testsupport.Render(t, body); after != before {
		t.Fatalf("document changed for unknown key:\nbefore: %s\nafter:  %s", before, after)
	}
}

func TestPopulate_NameWinsOverID(t *testing.T) {
	body := testsupport.Container(t, `
		<div id="x">untouched</div>
		<input type="text" name="x">
	`)

	if err := quietBinder().Populate(body, map[string]any{"x": "v"}); err != nil {
		t.Fatalf("populate: %v", err)
	}

	if got := testsupport.FindKey(t, body, "x").Value(); got != "v" {
		t.Fatalf("named input: want %q, got %q", "v", got)
	}
	div := dom.FindFirst(body, "div")
	if div == nil || div.Text() != "untouched" {
		t.Fatal("id-matched element changed while a name match existed")
	}
}

func TestPopulate_Preconditions(t *testing.T) {
	body := testsupport.Container(t, `<input name="k">`)

	if err := quietBinder().Populate(nil, map[string]any{}); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("nil container: want ErrTypeMismatch, got %v", err)
	}
	if err := quietBinder().Populate(body, nil); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("nil data: want ErrTypeMismatch, got %v", err)
	}

	// failed preconditions must not touch the tree
	if got := testsupport.FindKey(t, body, "k").Value(); got != "" {
		t.Fatalf("precondition failure mutated tree: %q", got)
	}
}

func TestPopulate_RadioGroup(t *testing.T) {
	markup := `
		<input type="radio" name="size" value="s">
		<input type="radio" name="size" value="m" checked>
		<input type="radio" name="size" value="2">
	`
	t.Run("loose match moves the check", func(t *testing.T) {
		body := testsupport.Container(t, markup)
		if err := quietBinder().Populate(body, map[string]any{"size": 2}); err != nil {
			t.Fatalf("populate: %v", err)
		}
		group := testsupport.FindAll(t, body, "size")
		want := []bool{false, false, true}
		for i, el := range group {
			if el.Checked() != want[i] {
				t.Fatalf("radio %d: want checked=%v", i, want[i])
			}
		}
	})

	t.Run("nil unchecks the whole group", func(t *testing.T) {
		body := testsupport.Container(t, markup)
		if err := quietBinder().Populate(body, map[string]any{"size": nil}); err != nil {
			t.Fatalf("populate: %v", err)
		}
		for i, el := range testsupport.FindAll(t, body, "size") {
			if el.Checked() {
				t.Fatalf("radio %d still checked", i)
			}
		}
	})

	t.Run("no match unchecks everything", func(t *testing.T) {
		body := testsupport.Container(t, markup)
		if err := quietBinder().Populate(body, map[string]any{"size": "xl"}); err != nil {
			t.Fatalf("populate: %v", err)
		}
		for i, el := range testsupport.FindAll(t, body, "size") {
			if el.Checked() {
				t.Fatalf("radio %d still checked", i)
			}
		}
	})
}

func TestPopulate_CheckboxGroup(t *testing.T) {
	markup := `
		<input type="checkbox" name="langs" value="go" checked>
		<input type="checkbox" name="langs" value="js">
		<input type="checkbox" name="langs" value="1">
	`
	checkedStates := func(t *testing.T, data map[string]any) []bool {
		t.Helper()
		body := testsupport.Container(t, markup)
		if err := quietBinder().Populate(body, data); err != nil {
			t.Fatalf("populate: %v", err)
		}
		group := testsupport.FindAll(t, body, "langs")
		out := make([]bool, len(group))
		for i, el := range group {
			out[i] = el.Checked()
		}
		return out
	}

	cases := []struct {
		name string
		data map[string]any
		want []bool
	}{
		{"sequence membership", map[string]any{"langs": []any{"js", 1}}, []bool{false, true, true}},
		{"scalar wraps", map[string]any{"langs": "js"}, []bool{false, true, false}},
		{"empty sequence clears", map[string]any{"langs": []any{}}, []bool{false, false, false}},
		{"nil clears", map[string]any{"langs": nil}, []bool{false, false, false}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, checkedStates(t, tc.data)); diff != "" {
				t.Fatalf("checked states mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPopulate_PositionalFanOut(t *testing.T) {
	markup := `
		<input type="text" name="part" value="p0">
		<input type="text" name="part" value="p1">
		<input type="text" name="part" value="p2">
	`
	routed := func(t *testing.T, value any) []string {
		t.Helper()
		body := testsupport.Container(t, markup)
		if err := quietBinder().Populate(body, map[string]any{"part": value}); err != nil {
			t.Fatalf("populate: %v", err)
		}
		group := testsupport.FindAll(t, body, "part")
		out := make([]string, len(group))
		for i, el := range group {
			out[i] = el.Value()
		}
		return out
	}

	t.Run("entry i lands on element i", func(t *testing.T) {
		want := []string{"a", "b", "c"}
		if diff := cmp.Diff(want, routed(t, []any{"a", "b", "c"})); diff != "" {
			t.Fatalf("fan-out mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("short sequence blanks the tail", func(t *testing.T) {
		want := []string{"a", "", ""}
		if diff := cmp.Diff(want, routed(t, []any{"a"})); diff != "" {
			t.Fatalf("fan-out mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("extra entries are dropped", func(t *testing.T) {
		want := []string{"a", "b", "c"}
		if diff := cmp.Diff(want, routed(t, []any{"a", "b", "c", "d", "e"})); diff != "" {
			t.Fatalf("fan-out mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("scalar broadcasts", func(t *testing.T) {
		want := []string{"same", "same", "same"}
		if diff := cmp.Diff(want, routed(t, "same")); diff != "" {
			t.Fatalf("broadcast mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestPopulate_TextareaMediaAnchor(t *testing.T) {
	body := testsupport.Container(t, `
		<textarea name="bio">old</textarea>
		<img id="avatar" src="old.png">
		<a id="profile" href="/old">profile</a>
	`)

	err := quietBinder().Populate(body, map[string]any{
		"bio":     "line one",
		"avatar":  "new.png",
		"profile": "/users/ada",
	})
	if err != nil {
		t.Fatalf("populate: %v", err)
	}

	if got := testsupport.FindKey(t, body, "bio").Value(); got != "line one" {
		t.Fatalf("textarea: want %q, got %q", "line one", got)
	}
	if got := testsupport.FindKey(t, body, "avatar").Source(); got != "new.png" {
		t.Fatalf("img src: want %q, got %q", "new.png", got)
	}
	if got := testsupport.FindKey(t, body, "profile").Href(); got != "/users/ada" {
		t.Fatalf("anchor href: want %q, got %q", "/users/ada", got)
	}
	// anchor text stays; only the reference moves
	if got := testsupport.FindKey(t, body, "profile").Text(); got != "profile" {
		t.Fatalf("anchor text changed: %q", got)
	}
}

func TestPopulate_FileInputIgnored(t *testing.T) {
	body := testsupport.Container(t, `<input type="file" name="upload">`)

	if err := quietBinder().Populate(body, map[string]any{"upload": "evil.txt"}); err != nil {
		t.Fatalf("populate: %v", err)
	}
	if v, ok := testsupport.FindKey(t, body, "upload").Attr("value"); ok {
		t.Fatalf("file input gained a value: %q", v)
	}
}

func TestPopulate_GenericContentEscapesByDefault(t *testing.T) {
	body := testsupport.Container(t, `<div id="note">old</div>`)

	err := quietBinder().Populate(body, map[string]any{"note": `<b>bold</b>`})
	if err != nil {
		t.Fatalf("populate: %v", err)
	}

	out := testsupport.Render(t, body)
	if !strings.Contains(out, "&lt;b&gt;bold&lt;/b&gt;") {
		t.Fatalf("markup not escaped: %s", out)
	}
	if strings.Contains(out, "<b>bold</b>") {
		t.Fatalf("markup became structure: %s", out)
	}
}

func TestPopulate_RawMarkupMode(t *testing.T) {
	body := testsupport.Container(t, `<div id="note"></div>`)

	err := quietBinder().Populate(body, map[string]any{"note": `<em>fine</em>`}, RawMarkup())
	if err != nil {
		t.Fatalf("populate: %v", err)
	}

	inner, err := testsupport.FindKey(t, body, "note").InnerHTML()
	if err != nil {
		t.Fatalf("inner html: %v", err)
	}
	if inner != "<em>fine</em>" {
		t.Fatalf("raw markup: got %q", inner)
	}
}

func TestPopulate_RawMarkupLaundersThroughPolicy(t *testing.T) {
	body := testsupport.Container(t, `<div id="note"></div>`)
	binder := quietBinder(WithSanitizePolicy(DefaultMarkupPolicy()))

	err := binder.Populate(body, map[string]any{
		"note": `<em>fine</em><script>alert(1)</script>`,
	}, RawMarkup())
	if err != nil {
		t.Fatalf("populate: %v", err)
	}

	inner, err := testsupport.FindKey(t, body, "note").InnerHTML()
	if err != nil {
		t.Fatalf("inner html: %v", err)
	}
	if !strings.Contains(inner, "<em>fine</em>") {
		t.Fatalf("benign markup stripped: %q", inner)
	}
	if strings.Contains(inner, "script") {
		t.Fatalf("script survived the policy: %q", inner)
	}
}

func TestPopulate_AttributesLandOnWholeGroup(t *testing.T) {
	body := testsupport.Container(t, `
		<input type="checkbox" name="langs" value="go" disabled>
		<input type="checkbox" name="langs" value="js" disabled>
		<input type="text" name="author">
	`)

	err := quietBinder().Populate(body, map[string]any{
		"langs":  "go",
		"author": "Ada",
	}, Attributes(map[string]dom.Attrs{
		"langs":  {"disabled": dom.AttrRemove(), "data-live": dom.AttrPresent()},
		"author": {"class": dom.AttrSet("highlight")},
	}))
	if err != nil {
		t.Fatalf("populate: %v", err)
	}

	for i, el := range testsupport.FindAll(t, body, "langs") {
		if el.HasAttr("disabled") {
			t.Fatalf("checkbox %d still disabled", i)
		}
		if !el.HasAttr("data-live") {
			t.Fatalf("checkbox %d missing data-live", i)
		}
	}
	if v, _ := testsupport.FindKey(t, body, "author").Attr("class"); v != "highlight" {
		t.Fatalf("author class: got %q", v)
	}
}

func TestPopulate_KeyFailureDoesNotStopOthers(t *testing.T) {
	body := testsupport.Container(t, `
		<input type="text" name="bad">
		<input type="text" name="good">
	`)
	binder := quietBinder()
	binder.Widgets().MustBindNumeric(testsupport.FindKey(t, body, "bad").Node, failingNumeric{})

	err := binder.Populate(body, map[string]any{
		"bad":  "1",
		"good": "landed",
	})
	if err != nil {
		t.Fatalf("populate surfaced a per-key failure: %v", err)
	}

	if got := testsupport.FindKey(t, body, "good").Value(); got != "landed" {
		t.Fatalf("later key skipped after failure: %q", got)
	}
}

type failingNumeric struct{}

func (failingNumeric) Set(value string) error         { return errors.New("refused") }
func (failingNumeric) Clear() error                   { return errors.New("refused") }
func (failingNumeric) NumericString() (string, error) { return "", errors.New("refused") }

type recordingNumeric struct {
	set     []string
	cleared int
	numeric string
}

func (w *recordingNumeric) Set(value string) error {
	w.set = append(w.set, value)
	return nil
}

func (w *recordingNumeric) Clear() error {
	w.cleared++
	return nil
}

func (w *recordingNumeric) NumericString() (string, error) {
	return w.numeric, nil
}

func TestPopulate_NumericWidgetDelegation(t *testing.T) {
	body := testsupport.Container(t, `<input type="text" name="price" value="stale">`)
	binder := quietBinder()
	widget := &recordingNumeric{}
	binder.Widgets().MustBindNumeric(testsupport.FindKey(t, body, "price").Node, widget)

	if err := binder.Populate(body, map[string]any{"price": 1299.5}); err != nil {
		t.Fatalf("populate: %v", err)
	}
	if diff := cmp.Diff([]string{"1299.5"}, widget.set); diff != "" {
		t.Fatalf("numeric set calls (-want +got):\n%s", diff)
	}
	// the widget owns the write; the element value stays untouched
	if got := testsupport.FindKey(t, body, "price").Value(); got != "stale" {
		t.Fatalf("element written around the widget: %q", got)
	}

	if err := binder.Populate(body, map[string]any{"price": nil}); err != nil {
		t.Fatalf("populate nil: %v", err)
	}
	if widget.cleared != 1 {
		t.Fatalf("clear calls: want 1, got %d", widget.cleared)
	}
}
