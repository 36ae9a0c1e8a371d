package chefapi

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is an opaque identifier. The service emits ids as JSON numbers in some
// payloads and as quoted strings in others, so decoding accepts both. An
// empty ID means "absent", used for order slots that have no order yet.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id is neither string nor number: %s", data)
	}
	*id = ID(n.String())
	return nil
}

// Flag is a boolean the service may encode as true/false, 0/1, or "0"/"1".
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "true", "1", `"1"`, `"true"`:
		*f = true
	case "false", "0", `"0"`, `"false"`, "null", `""`:
		*f = false
	default:
		return fmt.Errorf("flag is not a recognizable boolean: %s", data)
	}
	return nil
}

// Profile identifies the logged-in employee for every subsequent call.
type Profile struct {
	ID       ID     `json:"id"`
	Username string `json:"username"`
}

// OrderSummary is one day's order slot inside the lookahead window.
type OrderSummary struct {
	OrderID ID     `json:"order_id"`
	MenuID  ID     `json:"menu_id"`
	Date    string `json:"date"`
	Status  string `json:"status"`
	Enabled Flag   `json:"enabled"`
}

// OrderDetail lists the food categories available for one order slot.
type OrderDetail struct {
	Foods []FoodCategory `json:"foods"`
}

// FoodCategory is one choice the user must make. CategoryColumn is the
// stable key the submission parameters are keyed by.
type FoodCategory struct {
	CategoryName   string       `json:"category_name"`
	CategoryColumn string       `json:"category_column"`
	FoodTypes      FoodTypeList `json:"food_types"`
}

// FoodType groups the foods of one type within a category.
type FoodType struct {
	Name  string
	Foods []Food
}

// FoodTypeList decodes the food_types object preserving member order. The
// choice list shown to the user concatenates the type lists in the order the
// service sent them, which a plain map would scramble.
type FoodTypeList []FoodType

func (l *FoodTypeList) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("food_types is not an object: %s", data)
	}
	var out FoodTypeList
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("food_types key is not a string: %v", keyTok)
		}
		var foods []Food
		if err := dec.Decode(&foods); err != nil {
			return fmt.Errorf("food_types[%s]: %w", name, err)
		}
		out = append(out, FoodType{Name: name, Foods: foods})
	}
	*l = out
	return nil
}

// Food is one selectable dish.
type Food struct {
	FoodID   ID     `json:"food_id"`
	FoodName string `json:"food_name"`
}

// OrderResult is whatever the service returns for a submission. The client
// only cares that a result was present; callers may inspect it for display.
type OrderResult map[string]any
