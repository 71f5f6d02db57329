package model_test

import (
	"encoding/json"
	"testing"

	"github.com/idilsaglam/demo/internal/model"
)

func TestUser_DecodeNumericID(t *testing.T) {
	body := `[{"id":1,"name":"Leanne Graham","username":"Bret","email":"Sincere@april.biz"}]`
	var users []model.User
	if err := json.Unmarshal([]byte(body), &users); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("got %d users, want 1", len(users))
	}
	want := model.User{ID: "1", Name: "Leanne Graham", Email: "Sincere@april.biz"}
	if users[0] != want {
		t.Fatalf("got %+v, want %+v", users[0], want)
	}
}

func TestUser_DecodeStringID(t *testing.T) {
	var u model.User
	if err := json.Unmarshal([]byte(`{"id":"1","name":"Ann","email":"a@x.com"}`), &u); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if u.ID != "1" || u.Name != "Ann" || u.Email != "a@x.com" {
		t.Fatalf("got %+v", u)
	}
}

func TestUser_DecodeBadID_Fails(t *testing.T) {
	var u model.User
	if err := json.Unmarshal([]byte(`{"id":{"x":1}}`), &u); err == nil {
		t.Fatal("expected error for object id")
	}
}
