package queue_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/okian/fastbreak/internal/adapters/mq/queue"
	"github.com/okian/fastbreak/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func fixture(id string) model.Fixture {
	return model.Fixture{ID: id, Matchday: 1, Home: "Hawks", Away: "Comets"}
}

func TestInMemoryQueue(t *testing.T) {
	Convey("Given a fresh fixture queue", t, func() {
		ctx := context.Background()

		Convey("When enqueuing and dequeuing fixtures", func() {
			q := queue.NewInMemoryQueue()
			defer q.Close()

			So(q.Enqueue(ctx, fixture("f-1")), ShouldBeTrue)
			So(q.Enqueue(ctx, fixture("f-2")), ShouldBeTrue)
			So(q.Len(ctx), ShouldEqual, 2)

			Convey("Then fixtures come out in order", func() {
				out := q.Dequeue(ctx)
				f1 := <-out
				f2 := <-out
				So(f1.ID, ShouldEqual, "f-1")
				So(f2.ID, ShouldEqual, "f-2")
			})
		})

		Convey("When the queue is at capacity", func() {
			q := queue.NewInMemoryQueue(queue.WithCapacity(2), queue.WithBufferSize(2))
			defer q.Close()

			So(q.Enqueue(ctx, fixture("f-1")), ShouldBeTrue)
			So(q.Enqueue(ctx, fixture("f-2")), ShouldBeTrue)

			Convey("Then further enqueues are rejected without blocking", func() {
				So(q.Enqueue(ctx, fixture("f-3")), ShouldBeFalse)
				So(q.Len(ctx), ShouldEqual, 2)
			})
		})

		Convey("When the queue is closed", func() {
			q := queue.NewInMemoryQueue()
			So(q.Enqueue(ctx, fixture("f-1")), ShouldBeTrue)
			So(q.Close(), ShouldBeNil)

			Convey("Then it reports closed and rejects new fixtures", func() {
				So(q.IsClosed(), ShouldBeTrue)
				So(q.Enqueue(ctx, fixture("f-2")), ShouldBeFalse)
			})

			Convey("Then closing again is a no-op", func() {
				So(q.Close(), ShouldBeNil)
			})

			Convey("Then the dequeue channel drains and closes", func() {
				out := q.Dequeue(ctx)
				f, ok := <-out
				So(ok, ShouldBeTrue)
				So(f.ID, ShouldEqual, "f-1")

				select {
				case _, open := <-out:
					So(open, ShouldBeFalse)
				case <-time.After(time.Second):
					t.Fatal("dequeue channel did not close")
				}
			})
		})

		Convey("When many producers race", func() {
			q := queue.NewInMemoryQueue(queue.WithCapacity(1000), queue.WithBufferSize(1000))
			defer q.Close()

			done := make(chan struct{})
			for g := 0; g < 10; g++ {
				go func(g int) {
					for i := 0; i < 50; i++ {
						q.Enqueue(ctx, fixture(fmt.Sprintf("f-%d-%d", g, i)))
					}
					done <- struct{}{}
				}(g)
			}
			for g := 0; g < 10; g++ {
				<-done
			}

			Convey("Then every fixture is queued exactly once", func() {
				So(q.Len(ctx), ShouldEqual, 500)
			})
		})
	})
}
