package sequences

import (
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/idilsaglam/playgrounds/internal/ui"
)

func Demo(p *ui.Printer) error {
	p.Section("Map")
	loop := TitlesLoop(Catalog)
	loop = append(loop, TitlesLoop(Catalog)...)
	p.Printf("a loop that runs twice doubles the list: %d titles\n", len(loop))
	p.Printf("map builds it once: %d titles\n", len(Titles(Catalog)))
	for _, l := range WithLove(Catalog[:3]) {
		p.Println(" ", l)
	}

	p.Section("Filter")
	p.Println("1989:", strings.Join(Titles(FromAlbum(Catalog, "1989")), ", "))
	p.Println("Red: ", strings.Join(Titles(FromAlbum(Catalog, "Red")), ", "))

	p.Section("FlatMap")
	albums := [][]Song{FromAlbum(Catalog, "1989"), FromAlbum(Catalog, "Fearless")}
	for _, t := range FlatTitles(albums) {
		p.Println(" ", t)
	}
	p.Println("plus 13:", Plus13([][]int{{1, 2}, {3}, {}, {4, 5}}))

	p.Section("Compact")
	maybe := []mo.Option[string]{
		mo.Some("Blank Space"), mo.None[string](), mo.Some("Clean"), mo.None[string](),
	}
	p.Println(strings.Join(Compact(maybe), ", "))

	p.Section("Your own higher-order function")
	shout := Pipeline(
		func(xs []string) []string { return lo.Uniq(xs) },
		func(xs []string) []string { return lo.Map(xs, func(s string, _ int) string { return strings.ToUpper(s) }) },
	)
	p.Println(strings.Join(shout(Titles(FromAlbum(Catalog, "Red"))), ", "))

	groups := GroupByAlbum(Catalog)
	names := lo.Keys(groups)
	slices.Sort(names)
	for _, album := range names {
		p.Printf("  %-9s %d\n", album, len(groups[album]))
	}
	return nil
}
