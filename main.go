package main

import (
	"os"

	"github.com/eric2788/recset/pkg/recency"
	"github.com/eric2788/recset/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("demo", "lru")

func main() {

	level, err := logrus.ParseLevel(utils.EmptyOrElse(os.Getenv("LOG_LEVEL"), "info"))
	if err != nil {
		logrus.Fatalf("invalid LOG_LEVEL: %v", err)
	}
	logrus.SetLevel(level)

	s := recency.NewLruSet[int](
		recency.WithLogger[int](logrus.WithField("pkg", "recency")),
	)

	for _, v := range []int{1, 2, 3, 4} {
		s.Insert(v)
	}
	logger.Infof("seeded %d values, least to most recently used: %v", s.Len(), s)

	for _, v := range []int{5, 1} {
		hit := s.Query(v)
		logger.Infof("query %d: %s, order now %v", v, utils.Ternary(hit, "hit", "miss"), s)
	}

	evicted, err := s.Remove()
	if err != nil {
		logger.Fatalf("remove: %v", err)
	}
	logger.Infof("evicted %d, order now %v", evicted, s)

	s.Query(4)
	s.Insert(2)
	s.Query(3)
	logger.Infof("after query 4, insert 2, query 3: %v", s)

	for v := range s.All() {
		logger.Debugf("still present: %d", v)
	}

	logger.Info("draining, least to most recently used:")
	for !s.IsEmpty() {
		v, err := s.Remove()
		if err != nil {
			logger.Fatalf("drain: %v", err)
		}
		logger.Infof("  %d", v)
	}

	if _, err := s.Remove(); err != nil {
		logger.Warnf("%v", errors.Wrap(err, "remove on a drained set"))
	}

	q := recency.NewFifoSet[int]()
	for _, v := range []int{1, 2, 3, 4} {
		q.Insert(v)
	}
	q.Query(1)
	logger.Infof("fifo sibling ignores touches, order after query 1: %v", q.Values())
}
