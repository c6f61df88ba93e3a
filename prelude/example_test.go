package prelude_test

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/kbukum/prelude/prelude"
)

func ExampleLines() {
	ctx := context.Background()
	lines := prelude.Lines(strings.NewReader("10\r\n20\n30"))
	nums := prelude.Map(lines, func(_ context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	})
	total, err := prelude.Sum(ctx, nums)
	fmt.Println(total, err)
	// Output: 60 <nil>
}

func ExampleEnumerate() {
	ctx := context.Background()
	_ = prelude.ForEach(ctx, prelude.Enumerate(prelude.FromSlice([]string{"a", "b"})),
		func(_ context.Context, p prelude.Pair[int, string]) error {
			fmt.Println(p)
			return nil
		})
	// Output:
	// (0, a)
	// (1, b)
}

func ExampleRunLength() {
	runs, _ := prelude.Collect(context.Background(), prelude.RunLength(prelude.Runes("aaabcc")))
	fmt.Println(runs)
	// Output: [(97, 3) (98, 1) (99, 2)]
}

func ExampleFront() {
	_, err := prelude.Front(context.Background(), prelude.FromSlice([]int{}))
	fmt.Println(err)
	// Output: EMPTY_SEQUENCE: the sequence has no elements
}

func ExamplePipe2() {
	ctx := context.Background()
	diffs := prelude.Pipe2(prelude.FromSlice([]int{1, 3, 6, 10}),
		prelude.Pairing[int](),
		prelude.Mapping(func(_ context.Context, p prelude.Pair[int, int]) (int, error) {
			return p.Second - p.First, nil
		}))
	out, _ := prelude.Drive(ctx, diffs, prelude.Collecting[int]())
	fmt.Println(out)
	// Output: [2 3 4]
}
