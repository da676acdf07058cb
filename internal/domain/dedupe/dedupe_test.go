package dedupe_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	dedupe "github.com/okian/fastbreak/internal/domain/dedupe"
	. "github.com/smartystreets/goconvey/convey"
)

func TestInMemoryDeduper(t *testing.T) {
	Convey("Given a new deduper", t, func() {
		ctx := context.Background()

		Convey("When recording fixtures", func() {
			d := dedupe.NewInMemoryDeduper()

			Convey("And the fixture is new", func() {
				seen := d.SeenAndRecord(ctx, "fixture-1")

				Convey("Then it is recorded for the first time", func() {
					So(seen, ShouldBeFalse)
					So(d.Size(), ShouldEqual, 1)
				})
			})

			Convey("And the fixture was already simulated", func() {
				d.SeenAndRecord(ctx, "fixture-1")
				seen := d.SeenAndRecord(ctx, "fixture-1")

				Convey("Then the duplicate is reported", func() {
					So(seen, ShouldBeTrue)
					So(d.Size(), ShouldEqual, 1)
				})
			})
		})

		Convey("When a fixture fails to enqueue and is unrecorded", func() {
			d := dedupe.NewInMemoryDeduper()
			d.SeenAndRecord(ctx, "fixture-2")
			d.Unrecord(ctx, "fixture-2")

			Convey("Then it can be retried", func() {
				So(d.SeenAndRecord(ctx, "fixture-2"), ShouldBeFalse)
			})
		})

		Convey("When the bound is exceeded", func() {
			d := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(3))
			for i := 0; i < 5; i++ {
				d.SeenAndRecord(ctx, fmt.Sprintf("fixture-%d", i))
			}

			Convey("Then the oldest entries are evicted first", func() {
				So(d.Size(), ShouldEqual, 3)
				So(d.SeenAndRecord(ctx, "fixture-0"), ShouldBeFalse) // evicted, re-recordable
				So(d.SeenAndRecord(ctx, "fixture-4"), ShouldBeTrue)  // still tracked
			})
		})

		Convey("When hammered concurrently", func() {
			d := dedupe.NewInMemoryDeduper()
			var wg sync.WaitGroup
			firsts := make(chan bool, 100)
			for i := 0; i < 100; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					if !d.SeenAndRecord(ctx, "same-fixture") {
						firsts <- true
					}
				}()
			}
			wg.Wait()
			close(firsts)

			Convey("Then exactly one caller wins the record", func() {
				So(len(firsts), ShouldEqual, 1)
				So(d.Size(), ShouldEqual, 1)
			})
		})
	})
}
