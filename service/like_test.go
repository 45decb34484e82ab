package service

import (
	"errors"
	"testing"
	"time"

	"Warble/models"
)

func TestLikeToggle(t *testing.T) {
	env := newTestEnv(t)
	alice := env.signup(t, "alice")
	bob := env.signup(t, "bob")
	msg := env.post(t, bob.ID, "like me")

	liked, err := env.like.Toggle(t.Context(), alice.ID, msg.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !liked {
		t.Fatal("first toggle should like")
	}
	if isLiked, _ := env.like.IsLiked(t.Context(), alice.ID, msg.ID); !isLiked {
		t.Fatal("expected liked state")
	}

	// 再次切换取消点赞
	liked, err = env.like.Toggle(t.Context(), alice.ID, msg.ID)
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if liked {
		t.Fatal("second toggle should unlike")
	}

	messages, err := env.like.Liked(t.Context(), alice.ID)
	if err != nil {
		t.Fatalf("liked: %v", err)
	}
	if len(messages) != 0 {
		t.Fatalf("liked list = %d items after unlike, want 0", len(messages))
	}
}

func TestLikeUnknownMessage(t *testing.T) {
	env := newTestEnv(t)
	alice := env.signup(t, "alice")

	if _, err := env.like.Toggle(t.Context(), alice.ID, 99999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestLikedOrderAndLimit(t *testing.T) {
	env := newTestEnv(t)
	alice := env.signup(t, "alice")
	bob := env.signup(t, "bob")

	// 发布时间依次递增，点赞顺序打乱
	base := time.Now().Add(-time.Hour)
	var ids []int64
	for i := 0; i < 5; i++ {
		msg := &models.Message{
			ID:        int64(1000 + i),
			UserID:    bob.ID,
			Text:      "m",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			UpdatedAt: base,
		}
		if err := env.db.Create(msg).Error; err != nil {
			t.Fatalf("seed message: %v", err)
		}
		ids = append(ids, msg.ID)
	}
	for _, id := range []int64{ids[2], ids[0], ids[4], ids[1], ids[3]} {
		if _, err := env.like.Toggle(t.Context(), alice.ID, id); err != nil {
			t.Fatalf("toggle %d: %v", id, err)
		}
	}

	messages, err := env.like.Liked(t.Context(), alice.ID)
	if err != nil {
		t.Fatalf("liked: %v", err)
	}
	if len(messages) != 5 {
		t.Fatalf("got %d messages, want 5", len(messages))
	}
	// 按消息发布时间倒序，与点赞顺序无关
	for i := 1; i < len(messages); i++ {
		if messages[i].CreatedAt.After(messages[i-1].CreatedAt) {
			t.Fatalf("liked list not in descending order at #%d", i)
		}
	}
	if messages[0].ID != ids[4] {
		t.Fatalf("newest liked message = %d, want %d", messages[0].ID, ids[4])
	}
}
