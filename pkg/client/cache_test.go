package client

import "testing"

func TestCacheInvalidateListDropsFilteredVariants(t *testing.T) {
	qc := newQueryCache()
	qc.set("staff", []Staff{{ID: "a"}})
	qc.set("staff?tenantId=t1", []Staff{{ID: "a"}})
	qc.set("staff?tenantId=t2", []Staff{{ID: "b"}})
	qc.set("staff/a", &Staff{ID: "a"})
	qc.set("service", []Service{{ID: "s"}})

	qc.invalidateList("staff")

	for _, key := range []string{"staff", "staff?tenantId=t1", "staff?tenantId=t2"} {
		if _, ok := qc.get(key); ok {
			t.Errorf("key %q should have been invalidated", key)
		}
	}
	if _, ok := qc.get("staff/a"); !ok {
		t.Error("item key should survive a list invalidation")
	}
	if _, ok := qc.get("service"); !ok {
		t.Error("unrelated entity should survive a list invalidation")
	}
}

func TestCacheInvalidateItem(t *testing.T) {
	qc := newQueryCache()
	qc.set("plan/p1", &Plan{ID: "p1"})
	qc.set("plan/p2", &Plan{ID: "p2"})

	qc.invalidateItem("plan", "p1")

	if _, ok := qc.get("plan/p1"); ok {
		t.Error("plan/p1 should have been invalidated")
	}
	if _, ok := qc.get("plan/p2"); !ok {
		t.Error("plan/p2 should be untouched")
	}
}

func TestCacheKeys(t *testing.T) {
	if got := listKey("appointment", ""); got != "appointment" {
		t.Errorf("listKey unfiltered = %q", got)
	}
	if got := listKey("appointment", "userId=u1"); got != "appointment?userId=u1" {
		t.Errorf("listKey filtered = %q", got)
	}
	if got := itemKey("appointment", "a1"); got != "appointment/a1" {
		t.Errorf("itemKey = %q", got)
	}
}
