// Package collections covers the built-in and standard collections: slices,
// strings as UTF-8 byte sequences, maps, container/list and container/heap,
// plus locale-aware ordering with golang.org/x/text/collate.
package collections

import (
	"container/heap"
	"container/list"
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Run prints every lesson of the tutorial.
func Run() {
	fmt.Println("集合类型演示")
	fmt.Println("------------")

	section("切片：长度、容量与增长")
	demoSlices()

	section("字符串：字节、rune 与 UTF-8")
	demoStrings()

	section("map：增删改查与有序遍历")
	demoMaps()

	section("container/list 与 container/heap")
	demoContainers()

	section("按语言排序：golang.org/x/text/collate")
	demoCollation()

	section("示例：成绩数据处理流水线")
	demoPipeline()

	fmt.Println("\n集合类型演示完成！")
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}

func demoSlices() {
	v := make([]int, 0, 2)
	prevCap := cap(v)
	for i := range 6 {
		v = append(v, i)
		if cap(v) != prevCap {
			fmt.Printf("  append %d 后扩容: len=%d cap %d → %d\n", i, len(v), prevCap, cap(v))
			prevCap = cap(v)
		}
	}

	fmt.Println("  slices.Contains(v, 3) =", slices.Contains(v, 3))
	fmt.Println("  slices.Index(v, 4) =", slices.Index(v, 4))
	v = slices.Insert(v, 1, 100)
	fmt.Println("  Insert(1, 100):", v)
	v = slices.Delete(v, 0, 2)
	fmt.Println("  Delete(0, 2):", v)
	slices.Reverse(v)
	fmt.Println("  Reverse:", v)
	fmt.Println("  Max:", slices.Max(v), "Sorted:", slices.Sorted(slices.Values(v)))

	// Binary search on sorted data.
	sorted := []int{1, 3, 5, 7, 9}
	i, found := slices.BinarySearch(sorted, 7)
	fmt.Println("  BinarySearch(7) →", i, found)
}

func demoStrings() {
	s := "Hello, 世界!"
	fmt.Printf("  字节数 len=%d，字符数 RuneCount=%d\n", len(s), utf8.RuneCountInString(s))
	fmt.Printf("  s[7] 是字节 0x%x，不是字符\n", s[7])

	runes := []rune(s)
	fmt.Printf("  []rune(s)[7] = %c\n", runes[7])

	var sb strings.Builder
	for _, w := range []string{"Go", "与", "字符串"} {
		sb.WriteString(w)
		sb.WriteByte(' ')
	}
	fmt.Printf("  strings.Builder 拼接: %q\n", strings.TrimSpace(sb.String()))

	fmt.Println("  Fields:", strings.Fields("  a  b   c "))
	fmt.Println("  Split:", strings.Split("x,y,z", ","))
	fmt.Println("  ToUpper:", strings.ToUpper("gopher"))
	fmt.Println("  Replace:", strings.ReplaceAll("aaa", "a", "b"))
	fmt.Println("  有效 UTF-8:", utf8.ValidString(s), utf8.ValidString("\xff"))
}

// wordCount counts words case-insensitively.
func wordCount(text string) map[string]int {
	counts := make(map[string]int)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		w = strings.Trim(w, ".,!?")
		if w != "" {
			counts[w]++
		}
	}
	return counts
}

func demoMaps() {
	scores := map[string]int{"蓝队": 10, "黄队": 50}
	scores["红队"] = 30
	scores["蓝队"] += 5
	delete(scores, "黄队")

	// Map iteration order is randomized; sort keys for stable output.
	for _, k := range slices.Sorted(maps.Keys(scores)) {
		fmt.Printf("  %s: %d\n", k, scores[k])
	}

	if _, ok := scores["黄队"]; !ok {
		fmt.Println("  黄队已删除")
	}

	counts := wordCount("the quick fox. The lazy dog, the end!")
	keys := slices.Collect(maps.Keys(counts))
	slices.SortFunc(keys, func(a, b string) int {
		if d := counts[b] - counts[a]; d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})
	fmt.Print("  词频:")
	for _, k := range keys {
		fmt.Printf(" %s=%d", k, counts[k])
	}
	fmt.Println()

	// Sets are map[T]struct{}.
	set := map[string]struct{}{}
	for _, tag := range []string{"go", "rust", "go", "zig"} {
		set[tag] = struct{}{}
	}
	fmt.Println("  去重后的集合:", slices.Sorted(maps.Keys(set)))
}

// intHeap is a min-heap of ints.
type intHeap []int

func (h intHeap) Len() int           { return len(h) }
func (h intHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h intHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *intHeap) Push(x any)        { *h = append(*h, x.(int)) }
func (h *intHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// popAll drains a heap built from xs, returning ascending values.
func popAll(xs []int) []int {
	h := intHeap(slices.Clone(xs))
	heap.Init(&h)
	out := make([]int, 0, len(xs))
	for h.Len() > 0 {
		out = append(out, heap.Pop(&h).(int))
	}
	return out
}

func demoContainers() {
	l := list.New()
	l.PushBack("b")
	l.PushFront("a")
	l.PushBack("c")
	var items []string
	for e := l.Front(); e != nil; e = e.Next() {
		items = append(items, e.Value.(string))
	}
	fmt.Println("  list 双端队列:", items)

	fmt.Println("  heap 依次弹出:", popAll([]int{5, 2, 8, 1, 9, 3}))
}

// sortChinese orders words by their pinyin collation.
func sortChinese(words []string) []string {
	out := slices.Clone(words)
	c := collate.New(language.Chinese)
	c.SortStrings(out)
	return out
}

func demoCollation() {
	words := []string{"张三", "李四", "王五", "阿强", "赵六"}
	byBytes := slices.Clone(words)
	slices.Sort(byBytes)
	fmt.Println("  按字节排序:", byBytes)
	fmt.Println("  按中文排序:", sortChinese(words))
}

type student struct {
	Name  string
	Class string
	Score int
}

// classAverages groups scores by class.
func classAverages(ss []student) map[string]float64 {
	sums := map[string]int{}
	counts := map[string]int{}
	for _, s := range ss {
		sums[s.Class] += s.Score
		counts[s.Class]++
	}
	avg := make(map[string]float64, len(sums))
	for c, sum := range sums {
		avg[c] = float64(sum) / float64(counts[c])
	}
	return avg
}

func demoPipeline() {
	ss := []student{
		{"小红", "一班", 92}, {"小明", "二班", 78}, {"小刚", "一班", 85},
		{"小丽", "二班", 96}, {"小军", "三班", 58},
	}

	passed := slices.DeleteFunc(slices.Clone(ss), func(s student) bool { return s.Score < 60 })
	slices.SortFunc(passed, func(a, b student) int { return b.Score - a.Score })
	fmt.Print("  及格并按分数降序:")
	for _, s := range passed {
		fmt.Printf(" %s(%d)", s.Name, s.Score)
	}
	fmt.Println()

	avg := classAverages(ss)
	for _, c := range slices.Sorted(maps.Keys(avg)) {
		fmt.Printf("  %s 平均分 %.1f\n", c, avg[c])
	}
}
