package crud

import (
	"context"
	"testing"

	"github.com/osse101/GrammoRPG_Go/internal/domain"
	"github.com/osse101/GrammoRPG_Go/internal/testing/fakes"
)

func BenchmarkPassthrough_GetByID(b *testing.B) {
	ctx := context.Background()
	svc := NewNamedPassthrough[domain.Item, domain.ItemInput, int](fakes.NewItems())
	item, err := svc.Add(ctx, domain.ItemInput{Name: "Sword"})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.GetByID(ctx, item.ID); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPassthrough_GetAll(b *testing.B) {
	ctx := context.Background()
	svc := NewNamedPassthrough[domain.Item, domain.ItemInput, int](fakes.NewItems())
	for i := 0; i < 100; i++ {
		if _, err := svc.Add(ctx, domain.ItemInput{Name: "Item"}); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.GetAll(ctx); err != nil {
			b.Fatal(err)
		}
	}
}
