package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"orderdelivery/internal/core/application/usecases/commands"
	"orderdelivery/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRemoveOrphanedProofImagesCommandHandler_Handle(t *testing.T) {
	grace := time.Hour
	old := time.Now().Add(-2 * time.Hour)
	fresh := time.Now()

	t.Run("removes_only_old_unreferenced_images", func(t *testing.T) {
		ctx := context.Background()

		proofRepo := new(MockProofRepository)
		imageStore := new(MockProofImageStore)
		uow := new(MockUoW)
		uow.On("ProofRepository").Return(proofRepo)
		proofRepo.On("GetAllImageRefs", ctx).Return([]string{"kept.jpg"}, nil)
		imageStore.On("List", ctx).Return([]ports.StoredImage{
			{Ref: "kept.jpg", ModTime: old},
			{Ref: "orphan-old.jpg", ModTime: old},
			{Ref: "orphan-fresh.jpg", ModTime: fresh},
		}, nil)
		imageStore.On("Remove", ctx, "orphan-old.jpg").Return(nil)

		factory := new(MockProofUoWFactory)
		factory.On("Create").Return(uow)

		h := commands.NewRemoveOrphanedProofImagesCommandHandler(factory, imageStore, grace)
		removed, err := h.Handle(ctx, commands.NewRemoveOrphanedProofImagesCommand())

		require.NoError(t, err)
		assert.Equal(t, 1, removed)
		imageStore.AssertNotCalled(t, "Remove", mock.Anything, "kept.jpg")
		imageStore.AssertNotCalled(t, "Remove", mock.Anything, "orphan-fresh.jpg")
	})

	t.Run("nothing_to_remove", func(t *testing.T) {
		ctx := context.Background()

		proofRepo := new(MockProofRepository)
		imageStore := new(MockProofImageStore)
		uow := new(MockUoW)
		uow.On("ProofRepository").Return(proofRepo)
		proofRepo.On("GetAllImageRefs", ctx).Return([]string{}, nil)
		imageStore.On("List", ctx).Return([]ports.StoredImage{}, nil)

		factory := new(MockProofUoWFactory)
		factory.On("Create").Return(uow)

		h := commands.NewRemoveOrphanedProofImagesCommandHandler(factory, imageStore, grace)
		removed, err := h.Handle(ctx, commands.NewRemoveOrphanedProofImagesCommand())

		require.NoError(t, err)
		assert.Zero(t, removed)
		imageStore.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	})

	t.Run("remove_failure_stops_the_sweep", func(t *testing.T) {
		ctx := context.Background()
		removeErr := errors.New("permission denied")

		proofRepo := new(MockProofRepository)
		imageStore := new(MockProofImageStore)
		uow := new(MockUoW)
		uow.On("ProofRepository").Return(proofRepo)
		proofRepo.On("GetAllImageRefs", ctx).Return([]string{}, nil)
		imageStore.On("List", ctx).Return([]ports.StoredImage{
			{Ref: "a.jpg", ModTime: old},
			{Ref: "b.jpg", ModTime: old},
		}, nil)
		imageStore.On("Remove", ctx, "a.jpg").Return(removeErr)

		factory := new(MockProofUoWFactory)
		factory.On("Create").Return(uow)

		h := commands.NewRemoveOrphanedProofImagesCommandHandler(factory, imageStore, grace)
		removed, err := h.Handle(ctx, commands.NewRemoveOrphanedProofImagesCommand())

		require.ErrorIs(t, err, removeErr)
		assert.Zero(t, removed)
		imageStore.AssertNotCalled(t, "Remove", mock.Anything, "b.jpg")
	})

	t.Run("zero_value_command_is_rejected", func(t *testing.T) {
		ctx := context.Background()

		h := commands.NewRemoveOrphanedProofImagesCommandHandler(new(MockProofUoWFactory), new(MockProofImageStore), grace)
		_, err := h.Handle(ctx, commands.RemoveOrphanedProofImagesCommand{})

		assert.ErrorIs(t, err, commands.ErrRemoveOrphanedProofImagesCommandIsNotConstructed)
	})
}
