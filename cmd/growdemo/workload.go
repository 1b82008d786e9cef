package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wilhasse/growable-go/list"
	"github.com/wilhasse/growable-go/mem"
	"github.com/wilhasse/growable-go/ut"
	"github.com/wilhasse/growable-go/vec"
)

func runFill(cmd *cobra.Command, args []string) error {
	var inner mem.Allocator
	if flagLimit > 0 {
		inner = mem.NewLimitAllocator(flagLimit)
	}
	counting := mem.NewCountingAllocator(inner)

	v, err := vec.NewWithAllocator[uint64](counting, 0)
	if err != nil {
		return err
	}
	rnd := ut.NewRand(flagSeed)

	lastCap := v.Cap()
	for i := 0; i < flagCount; i++ {
		if err := v.Append(rnd.Next()); err != nil {
			if errors.Is(err, mem.ErrOutOfMemory) {
				logger.Warn("allocator refused growth",
					zap.Int("appended", v.Len()),
					zap.Int("cap", v.Cap()),
					zap.Int("budget", flagLimit))
				break
			}
			return err
		}
		if v.Cap() != lastCap {
			logger.Info("grew",
				zap.Int("len", v.Len()),
				zap.Int("old_cap", lastCap),
				zap.Int("new_cap", v.Cap()))
			lastCap = v.Cap()
		}
	}

	logger.Info("fill done",
		zap.Int("len", v.Len()),
		zap.Int("cap", v.Cap()),
		zap.Int("reserves", counting.Reserves()),
		zap.Int("total_bytes", counting.TotalBytes()),
		zap.Int("live_bytes", counting.LiveBytes()))
	v.Free()
	return nil
}

func runDrain(cmd *cobra.Command, args []string) error {
	v := vec.New[uint64]()
	rnd := ut.NewRand(flagSeed)
	for i := 0; i < flagCount; i++ {
		if err := v.Append(rnd.Next()); err != nil {
			return err
		}
	}

	var shifted int
	for !v.IsEmpty() {
		i := rnd.Intn(v.Len())
		shifted += v.Len() - i - 1
		if _, err := v.RemoveAt(i); err != nil {
			return err
		}
	}

	logger.Info("drain done",
		zap.Int("removed", flagCount),
		zap.Int("elements_shifted", shifted),
		zap.Int("residual_cap", v.Cap()))
	v.Free()
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	l := list.New[uint64]()
	rnd := ut.NewRand(flagSeed)
	for i := 0; i < flagCount; i++ {
		if _, err := l.PushBack(rnd.Next()); err != nil {
			return err
		}
	}
	capAfterFill := l.ArenaCap()

	var sum uint64
	for _, elem := range l.All() {
		sum += elem
	}

	// Remove the front half and push it back; the arena must recycle
	// the freed slots instead of growing.
	for i := 0; i < flagCount/2; i++ {
		elem, err := l.RemoveFront()
		if err != nil {
			return err
		}
		if _, err := l.PushBack(elem); err != nil {
			return err
		}
	}

	logger.Info("list done",
		zap.Int("len", l.Len()),
		zap.Uint64("checksum", sum),
		zap.Int("cap_after_fill", capAfterFill),
		zap.Int("cap_after_churn", l.ArenaCap()),
		zap.Bool("slots_recycled", l.ArenaCap() == capAfterFill))
	l.Free()
	return nil
}
