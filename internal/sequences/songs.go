package sequences

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

type Song struct {
	Title string
	Album string
}

// Catalog is the data source every operation below works on.
var Catalog = []Song{
	{Title: "Blank Space", Album: "1989"},
	{Title: "All You Had to Do Was Stay", Album: "Red"},
	{Title: "Back to December", Album: "Speak Now"},
	{Title: "All You Had to Do Was Stay", Album: "1989"},
	{Title: "Begin Again", Album: "Red"},
	{Title: "Clean", Album: "1989"},
	{Title: "Love Story", Album: "Fearless"},
	{Title: "Shake It Off", Album: "1989"},
	{Title: "Bad Blood", Album: "1989"},
}

// TitlesLoop collects titles the imperative way.
func TitlesLoop(songs []Song) []string {
	var out []string
	for _, s := range songs {
		out = append(out, s.Title)
	}
	return out
}

func Titles(songs []Song) []string {
	return lo.Map(songs, func(s Song, _ int) string { return s.Title })
}

// Labels joins title and album.
func Labels(songs []Song) []string {
	return lo.Map(songs, func(s Song, _ int) string { return s.Title + " " + s.Album })
}

func WithLove(songs []Song) []string {
	return lo.Map(songs, func(s Song, _ int) string { return "I 💖 Taylor Swift: " + s.Title })
}

func FromAlbum(songs []Song, album string) []Song {
	return lo.Filter(songs, func(s Song, _ int) bool { return s.Album == album })
}

// FlatTitles flattens albums into one list of decorated titles.
func FlatTitles(albums [][]Song) []string {
	return lo.FlatMap(albums, func(album []Song, _ int) []string {
		return lo.Map(album, func(s Song, _ int) string { return s.Title + " - 💖 T.Swift" })
	})
}

// Plus13 flattens nested and adds 13 to each element.
func Plus13(nested [][]int) []int {
	return lo.FlatMap(nested, func(xs []int, _ int) []int {
		return lo.Map(xs, func(x int, _ int) int { return x + 13 })
	})
}

// Compact keeps only the present values, in order.
func Compact[T any](opts []mo.Option[T]) []T {
	return lo.FilterMap(opts, func(o mo.Option[T], _ int) (T, bool) { return o.Get() })
}

func GroupByAlbum(songs []Song) map[string][]Song {
	return lo.GroupBy(songs, func(s Song) string { return s.Album })
}

// UniqueTitles drops repeated titles, keeping the first occurrence.
func UniqueTitles(songs []Song) []string {
	return lo.Uniq(Titles(songs))
}

// Pipeline composes transforms left to right into one function.
func Pipeline[T any](steps ...func([]T) []T) func([]T) []T {
	return func(xs []T) []T {
		return lo.Reduce(steps, func(acc []T, step func([]T) []T, _ int) []T { return step(acc) }, xs)
	}
}

func (s Song) String() string { return fmt.Sprintf("%s (%s)", s.Title, s.Album) }
