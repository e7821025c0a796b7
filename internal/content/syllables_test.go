package content

import "testing"

func TestSyllables(t *testing.T) {
	cv := CV("ب")
	if len(cv) != 3 || cv[0] != "با" || cv[2] != "بو" {
		t.Errorf("CV(ب) = %v", cv)
	}
	vc := VC("ب")
	if len(vc) != 3 || vc[0] != "آب" || vc[1] != "إيب" {
		t.Errorf("VC(ب) = %v", vc)
	}
	vcv := VCV("ب")
	if len(vcv) != 3 || len(vcv[0]) != 3 {
		t.Fatalf("VCV(ب) shape = %v", vcv)
	}
	if vcv[0][0] != "آبا" || vcv[2][1] != "أوبي" {
		t.Errorf("VCV(ب) = %v", vcv)
	}
}
