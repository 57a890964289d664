package controller

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberController_ListMembers(t *testing.T) {
	f := setupControllerTest(t)
	f.member(t, "민지")
	f.member(t, "서연")

	w := f.do(t, http.MethodGet, "/members", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(2), body["count"])
	first := body["members"].([]interface{})[0].(map[string]interface{})
	assert.NotContains(t, first, "password")
}

func TestMemberController_UpdateMembership(t *testing.T) {
	f := setupControllerTest(t)
	m := f.member(t, "민지")

	w := f.do(t, http.MethodPut, "/members/"+m.ID+"/membership", map[string]interface{}{
		"is_member":     true,
		"member_expiry": "2030-01-01T00:00:00Z",
	})
	require.Equal(t, http.StatusOK, w.Code)
	member := decode(t, w)["member"].(map[string]interface{})
	assert.Equal(t, true, member["is_member"])
	assert.NotEmpty(t, member["member_expiry"])

	w = f.do(t, http.MethodPut, "/members/"+m.ID+"/membership", map[string]interface{}{"is_member": false})
	require.Equal(t, http.StatusOK, w.Code)
	member = decode(t, w)["member"].(map[string]interface{})
	assert.Equal(t, false, member["is_member"])
	assert.NotContains(t, member, "member_expiry")

	w = f.do(t, http.MethodPut, "/members/"+m.ID+"/membership", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodPut, "/members/missing/membership", map[string]interface{}{"is_member": true})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "MEMBER_NOT_FOUND", decode(t, w)["error"])
}

func TestMemberController_GetBilling(t *testing.T) {
	f := setupControllerTest(t)
	g := f.group(t)
	minji := f.member(t, "민지")
	f.member(t, "서연")

	w := f.do(t, http.MethodPut, "/groups/"+g.ID+"/orders/"+minji.ID, map[string]interface{}{
		"lines": []map[string]interface{}{{"item_id": g.Items[0].ID, "quantity": 2}},
	})
	require.Equal(t, http.StatusOK, w.Code)
	w = f.do(t, http.MethodPatch, "/groups/"+g.ID+"/settings", map[string]interface{}{"payment_status": "merch_billing"})
	require.Equal(t, http.StatusOK, w.Code)
	w = f.do(t, http.MethodPost, "/misc-charges", map[string]interface{}{"member_id": minji.ID, "title": "재포장", "amount": 35})
	require.Equal(t, http.StatusCreated, w.Code)

	w = f.do(t, http.MethodGet, "/members/"+minji.ID+"/billing", nil)
	require.Equal(t, http.StatusOK, w.Code)
	bill := decode(t, w)["billing"].(map[string]interface{})

	// (3000 + 1000) * 0.25 = 1000, plus 35 misc, plus ceil(90 / 2) membership
	assert.Equal(t, 1000.0, bill["groups_total"])
	assert.Equal(t, 35.0, bill["misc_total"])
	assert.Equal(t, 45.0, bill["membership_fee"])
	assert.Equal(t, 1080.0, bill["total"])
	assert.Len(t, bill["groups"], 1)

	w = f.do(t, http.MethodGet, "/members/missing/billing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
