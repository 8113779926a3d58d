package prose_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/Kongudocument-57316/document-creator-sub003/pkg/deed"
	"github.com/Kongudocument-57316/document-creator-sub003/pkg/prose"
)

func sampleDocument() deed.Document {
	return deed.Document{
		Type: deed.SaleDeed,
		Meta: deed.DocumentMeta{
			DocumentNumber:     "1234/2025",
			RegistrationDate:   "12-03-2025",
			SubRegistrarOffice: "கோயம்புத்தூர் சார்பதிவாளர் அலுவலகம்",
			BookNumber:         "1",
			SubmissionType:     "நேரில்",
		},
		Parties: []deed.Party{
			{Name: "குமார்", Role: deed.RoleBuyer, RelationType: deed.RelationFather, RelationName: "கந்தசாமி", Age: 42,
				Address: deed.Address{DoorNumber: "12/4", Line1: "காந்தி தெரு", District: "கோயம்புத்தூர்"}},
			{Name: "ரவி", Role: deed.RoleBuyer, Age: 38},
			{Name: "வள்ளி", Role: deed.RoleSeller, RelationType: deed.RelationHusband, RelationName: "முருகன்", Age: 55},
		},
		Properties: []deed.PropertyDescriptor{
			{SurveyNumber: "117/2B", Village: "அன்னூர்", Taluk: "பொள்ளாச்சி", District: "கோயம்புத்தூர்", State: "தமிழ்நாடு",
				Area: "2400", AreaUnit: "சதுர அடி", DeclaredValue: 1500000},
		},
		Payment: deed.PaymentClause{
			Method:          deed.PaymentCheque,
			Amount:          1500000,
			ReferenceNumber: "553412",
			TransactionDate: "10-03-2025",
			PayerBank:       deed.BankDetails{BankName: "இந்தியன் வங்கி", Branch: "கோயம்புத்தூர்", AccountType: "சேமிப்பு", AccountNumber: "1234567890"},
		},
		PriorDocument: &deed.PriorDocumentReference{
			DocumentNumber:   "887/2001",
			DocumentDate:     "05-06-2001",
			BookNumber:       "1",
			RegistrationYear: "2001",
			DocumentType:     "கிரைய ஆவணம்",
			RegistrarOffice:  "கோயம்புத்தூர் சார்பதிவாளர் அலுவலகம்",
			CopyType:         deed.CopyOriginal,
		},
		Witnesses: []deed.Party{
			{Name: "ராமு", Role: deed.RoleWitness},
			{Name: "சோமு", Role: deed.RoleWitness},
		},
		Typist: &deed.Party{Name: "தட்டச்சர் குமார்", Role: deed.RoleTypist},
	}
}

func newEngine(t *testing.T) *prose.Engine {
	t.Helper()
	engine, err := prose.NewEngine()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestResolve_SectionOrderAndContent(t *testing.T) {
	engine := newEngine(t)

	sections, err := engine.Resolve(sampleDocument())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	var kinds []prose.SectionKind
	for _, section := range sections {
		kinds = append(kinds, section.Kind)
	}
	want := []prose.SectionKind{
		prose.KindTitle, prose.KindParties, prose.KindPriorDocument,
		prose.KindPayment, prose.KindCovenants, prose.KindSchedule,
		prose.KindSignatures, prose.KindWitnesses, prose.KindTypist,
	}
	if len(kinds) != len(want) {
		t.Fatalf("section kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("section kinds = %v, want %v", kinds, want)
		}
	}

	text := prose.PlainText(sections)
	if !strings.Contains(text, "கிரைய ஆவணம்") {
		t.Error("title missing from output")
	}
	if !strings.Contains(text, "1. குமார்") || !strings.Contains(text, "2. ரவி") {
		t.Error("enumerated buyer recitals missing")
	}
	if !strings.Contains(text, "887/2001") {
		t.Error("prior document number missing")
	}
}

func TestResolve_ConditionalClauseExclusivity(t *testing.T) {
	engine := newEngine(t)

	doc := sampleDocument()
	doc.Payment = deed.PaymentClause{Method: deed.PaymentCash, Amount: 250000}

	sections, err := engine.Resolve(doc)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	text := prose.PlainText(sections)

	if !strings.Contains(text, "ரொக்கமாக") {
		t.Error("cash clause missing")
	}
	for _, fragment := range []string{"காசோலை", "வரைவோலை", "யூபிஐ", "நெஃப்ட்", "ஆர்டிஜிஎஸ்", "ஐஎம்பிஎஸ்"} {
		if strings.Contains(text, fragment) {
			t.Errorf("non-cash clause fragment %q leaked into cash render", fragment)
		}
	}
}

func TestResolve_AmountInWordsFreshness(t *testing.T) {
	engine := newEngine(t)

	doc := sampleDocument()
	doc.Payment.Amount = 100000
	first, err := engine.Resolve(doc)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	doc.Payment.Amount = 150000
	second, err := engine.Resolve(doc)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	firstText := prose.PlainText(first)
	secondText := prose.PlainText(second)
	if !strings.Contains(firstText, "ரூபாய் ஒரு லட்சம் மட்டும்") {
		t.Errorf("first render should carry words for 100000, got:\n%s", firstText)
	}
	if !strings.Contains(secondText, "ரூபாய் ஒரு லட்சத்து ஐம்பது ஆயிரம் மட்டும்") {
		t.Errorf("second render should carry words for 150000, got:\n%s", secondText)
	}
	if strings.Contains(secondText, "ரூபாய் ஒரு லட்சம் மட்டும்") {
		t.Error("stale amount words survived an amount change")
	}
}

func TestResolve_Deterministic(t *testing.T) {
	engine := newEngine(t)
	doc := sampleDocument()

	first, err := engine.Resolve(doc)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	firstText := prose.PlainText(first)
	for i := 0; i < 5; i++ {
		next, err := engine.Resolve(doc)
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if got := prose.PlainText(next); got != firstText {
			t.Fatal("repeated renders differ")
		}
	}
}

func TestResolve_GracefulDegradation(t *testing.T) {
	engine := newEngine(t)

	doc := sampleDocument()
	doc.Properties = nil
	doc.PriorDocument = nil

	sections, err := engine.Resolve(doc)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	for _, section := range sections {
		if section.Kind == prose.KindSchedule {
			t.Error("empty property schedule should omit the section")
		}
		if section.Kind == prose.KindPriorDocument {
			t.Error("absent prior document should omit the section")
		}
	}
	text := prose.PlainText(sections)
	if strings.Contains(text, "undefined") || strings.Contains(text, "null") {
		t.Error("output leaked a null-ish placeholder")
	}
}

func TestResolve_MissingRequiredFieldRendersMarker(t *testing.T) {
	engine := newEngine(t)

	doc := sampleDocument()
	doc.Payment.ReferenceNumber = ""

	sections, err := engine.Resolve(doc)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	var paymentText string
	for _, section := range sections {
		if section.Kind == prose.KindPayment {
			paymentText = strings.Join(section.Lines, "\n")
		}
	}
	if !strings.Contains(paymentText, prose.Marker) {
		t.Errorf("missing cheque number should render the %q marker, got:\n%s", prose.Marker, paymentText)
	}
	if strings.Contains(paymentText, "காசோலை எண் 0") {
		t.Error("missing cheque number must not substitute a fake default")
	}
}

func TestResolve_MultiPartyBlockRecitals(t *testing.T) {
	engine := newEngine(t)

	doc := sampleDocument()
	doc.Parties = []deed.Party{
		{Name: "A", Role: deed.RoleBuyer},
		{Name: "B", Role: deed.RoleBuyer},
		{Name: "C", Role: deed.RoleBuyer},
		{Name: "வள்ளி", Role: deed.RoleSeller},
	}

	tpl, ok := engine.Template(deed.SaleDeed)
	if !ok {
		t.Fatal("sale deed template missing")
	}
	if tpl.DocumentType != deed.SaleDeed {
		t.Fatalf("template type = %q", tpl.DocumentType)
	}

	sections, err := engine.Resolve(doc)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	// Block recitals enumerate one party per line.
	text := prose.PlainText(sections)
	if !strings.Contains(text, "1. A\n2. B\n3. C") {
		t.Errorf("enumerated buyer recitals missing from output:\n%s", text)
	}
}

func TestResolve_OmittedTransactionDate(t *testing.T) {
	engine := newEngine(t)

	doc := sampleDocument()
	doc.Payment.TransactionDate = ""

	sections, err := engine.Resolve(doc)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	text := prose.PlainText(sections)
	// The date is optional for every payment method. Leaving it out must
	// drop the whole date phrase, not render a labelled blank.
	if strings.Contains(text, "தேதி "+prose.Marker) {
		t.Errorf("omitted date rendered as labelled marker:\n%s", text)
	}
	if !strings.Contains(text, "எண் 553412 வாயிலாக") {
		t.Errorf("payment clause did not close up around the omitted date:\n%s", text)
	}

	doc.Payment.TransactionDate = "10-03-2025"
	sections, err = engine.Resolve(doc)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if text := prose.PlainText(sections); !strings.Contains(text, "எண் 553412, தேதி 10-03-2025 வாயிலாக") {
		t.Errorf("supplied date missing from payment clause:\n%s", text)
	}
}

func TestResolve_InlinePartyList(t *testing.T) {
	// Inline list tokens join enumerated parties with commas inside a
	// sentence, unlike the one-per-line block form.
	const inlineTemplate = `
documentType: saleDeed
title: கிரைய ஆவணம்
sections:
  - id: parties
    kind: parties
    body: |
      வாங்குபவர்கள்: {{buyers}} ஆகியோர் இவ்வாவணத்தில் கையொப்பம் இடுகின்றனர்.
      சாட்சிகள்: {{witnesses}}
`
	fsys := fstest.MapFS{
		"templates/saleDeed.yaml": &fstest.MapFile{Data: []byte(inlineTemplate)},
	}
	engine, err := prose.NewEngine(prose.WithTemplatesFS(fsys))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	doc := deed.Document{
		Type: deed.SaleDeed,
		Parties: []deed.Party{
			{Name: "A", Role: deed.RoleBuyer},
			{Name: "B", Role: deed.RoleBuyer},
			{Name: "C", Role: deed.RoleBuyer},
		},
		Witnesses: []deed.Party{
			{Name: "ராமு", Role: deed.RoleWitness},
			{Name: "சோமு", Role: deed.RoleWitness},
		},
	}

	sections, err := engine.Resolve(doc)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	text := prose.PlainText(sections)
	if !strings.Contains(text, "வாங்குபவர்கள்: 1. A, 2. B, 3. C ஆகியோர்") {
		t.Errorf("comma-joined buyer list missing from output:\n%s", text)
	}
	if !strings.Contains(text, "சாட்சிகள்: 1. ராமு, 2. சோமு") {
		t.Errorf("comma-joined witness list missing from output:\n%s", text)
	}
}

func TestResolve_UnknownTemplateType(t *testing.T) {
	engine := newEngine(t)
	_, err := engine.Resolve(deed.Document{Type: "leaseDeed"})
	if err == nil {
		t.Fatal("expected missing-template error")
	}
}
