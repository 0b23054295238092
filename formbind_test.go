package formbind_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	formbind "github.com/goliatone/go-formbind"
	"github.com/goliatone/go-formbind/pkg/dom"
)

func TestRootRoundTrip(t *testing.T) {
	doc, err := dom.ParseDocument(strings.NewReader(`
		<form>
			<input type="text" name="author">
			<input type="checkbox" name="langs" value="go">
			<input type="checkbox" name="langs" value="js">
			<select name="country">
				<option value="pt">Portugal</option>
				<option value="es">Spain</option>
			</select>
		</form>
	`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	data := map[string]any{
		"author":  "Ada",
		"langs":   []any{"go", "js"},
		"country": "es",
	}
	attrs := map[string]formbind.Attrs{
		"author": {"readonly": formbind.AttrPresent()},
	}

	if err := formbind.Populate(doc, data, formbind.Attributes(attrs)); err != nil {
		t.Fatalf("populate: %v", err)
	}

	got, err := formbind.Values(doc, "author", "langs", "country")
	if err != nil {
		t.Fatalf("values: %v", err)
	}

	want := map[string]any{
		"author":  "Ada",
		"langs":   []string{"go", "js"},
		"country": "es",
	}
	if diff := cmp.Diff(want, map[string]any(got)); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}

	author := dom.Resolve(doc, "author")
	if len(author) != 1 || !author[0].HasAttr("readonly") {
		t.Fatal("attribute directive not applied")
	}
}
