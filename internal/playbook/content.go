// Package playbook holds the post-flood recovery checklist and its
// completion tracker. The content is fixed: households work through
// the same eight sections, only the completion state is theirs.
package playbook

// Task is a single actionable checklist entry. Warning marks steps
// where skipping ahead is dangerous (live wiring, flooded engines).
type Task struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Warning bool   `json:"warning,omitempty"`
}

// SubSection groups related tasks under a heading.
type SubSection struct {
	Title string `json:"title"`
	Tasks []Task `json:"tasks"`
}

// Section is a top-level phase of the recovery effort.
type Section struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	SubSections []SubSection `json:"subSections"`
}

// Sections returns the checklist content. The returned value is shared;
// callers must treat it as read-only.
func Sections() []Section {
	return sections
}

var sections = []Section{
	{
		ID:    "safety",
		Title: "1. ความปลอดภัยก่อน (Safety First)",
		SubSections: []SubSection{
			{
				Title: "1.1 ตรวจสอบโครงสร้างบ้าน (Check Structural Integrity)",
				Tasks: []Task{
					{ID: "s1-1", Text: "ห้ามเข้าบ้านทันทีหากเห็นเสา/กำแพงเอียง หรือแตกร้าว (Do not enter if you see tilted pillars/walls or cracks)", Warning: true},
					{ID: "s1-2", Text: "ตรวจสอบหลังคาทรุด หรือพื้นยุบ (Check for sagging roofs or collapsed floors)", Warning: true},
					{ID: "s1-3", Text: "หากสงสัยโครงสร้างเสียหาย ให้ปรึกษา อบต./เทศบาล/วิศวกร ก่อนเข้าพื้นที่ (If uncertain, consult local authorities/engineers before entering)"},
				},
			},
			{
				Title: "1.2 ไฟฟ้า - แก๊ส - สารเคมี (Electricity - Gas - Chemicals)",
				Tasks: []Task{
					{ID: "s1-4", Text: "ปิดเมนไฟฟ้าทันที (หากปลอดภัยและเข้าถึงได้) [Turn off main power immediately (if safe)]", Warning: true},
					{ID: "s1-5", Text: "ห้ามเปิดเครื่องใช้ไฟฟ้าที่เคยจมน้ำทันที (Do not turn on submerged appliances)"},
					{ID: "s1-6", Text: "ให้ช่างไฟตรวจสอบระบบสายไฟและปลั๊กก่อนใช้งาน (Have an electrician check wiring and outlets)"},
					{ID: "s1-7", Text: "ตรวจสอบสายแก๊สว่าชำรุดหรือไม่ หากได้กลิ่นให้เปิดระบายอากาศทันที (Check gas lines; ventilate immediately if you smell gas)", Warning: true},
					{ID: "s1-8", Text: "หลีกเลี่ยงการสัมผัสถังสารเคมี/ยาฆ่าแมลงที่ล้มหรือรั่วด้วยมือเปล่า (Avoid touching leaking chemical/pesticide containers)"},
				},
			},
		},
	},
	{
		ID:    "evidence",
		Title: "2. เก็บหลักฐาน (Evidence Collection)",
		SubSections: []SubSection{
			{
				Title: "2.1 ถ่ายรูป/วิดีโอ \"ก่อนเก็บกวาด\" (Photo/Video Before Cleanup)",
				Tasks: []Task{
					{ID: "e2-1", Text: "ถ่ายภาพหน้าบ้าน ในบ้าน และรอบบริเวณบ้าน (Take photos of exterior, interior, and surroundings)"},
					{ID: "e2-2", Text: "ถ่ายให้เห็นระดับคราบน้ำบนผนัง ประตู และเฟอร์นิเจอร์ (Capture water line marks on walls/doors/furniture)"},
					{ID: "e2-3", Text: "ถ่ายภาพกว้าง (เห็นทั้งห้อง) และภาพใกล้ (เห็นความเสียหายเจาะจง) [Take wide shots (room overview) and close-ups (specific damage)]"},
					{ID: "e2-4", Text: "ถ่าย Serial Number / ยี่ห้อ / รุ่น ของเครื่องใช้ไฟฟ้าที่เสียหาย (Photo of Serial No./Brand/Model of damaged appliances)"},
				},
			},
			{
				Title: "2.2 จดบันทึกเหตุการณ์ (Log Events)",
				Tasks: []Task{
					{ID: "e2-5", Text: "บันทึกวัน-เวลาที่น้ำเข้า, น้ำสูงสุด และน้ำเริ่มลด (Log date/time of water entry, peak, and receding)"},
					{ID: "e2-6", Text: "ระบุระดับน้ำสูงสุด (เช่น ถึงเข่า, ถึงลูกบิดประตู) [Record peak water level (e.g., knee-high, door knob level)]"},
					{ID: "e2-7", Text: "จดรายการจุดที่เสียหายหนักเป็นพิเศษ (เช่น ห้องครัว, โกดัง) [Note heavily damaged areas (e.g., kitchen, warehouse)]"},
				},
			},
		},
	},
	{
		ID:    "cleanup",
		Title: "3. จัดการบ้านและทรัพย์สิน (Cleanup & Inventory)",
		SubSections: []SubSection{
			{
				Title: "3.1 การทำความสะอาดเบื้องต้น (Initial Cleanup)",
				Tasks: []Task{
					{ID: "c3-1", Text: "ถ่ายรูปของที่จะทิ้งก่อนนำไปทิ้งเสมอ (Always photograph items before disposal)"},
					{ID: "c3-2", Text: "สวมอุปกรณ์ป้องกัน: ถุงมือ, หน้ากาก, รองเท้าบูท (Wear PPE: gloves, masks, boots)"},
					{ID: "c3-3", Text: "เคลียร์เศษแก้ว ของมีคม และเปิดทางระบายน้ำขัง (Clear broken glass/sharps and unblock drains)"},
				},
			},
			{
				Title: "3.2 จัดหมวดหมู่ของเสียหาย (Categorize Damaged Items)",
				Tasks: []Task{
					{ID: "c3-4", Text: "แยกหมวด: เครื่องใช้ไฟฟ้า, เฟอร์นิเจอร์, เครื่องมือทำกิน (Separate: Appliances, Furniture, Livelihood tools)"},
					{ID: "c3-5", Text: "ทำบัญชีรายการของเสียหาย: ชื่อ, จำนวน, ราคาโดยประมาณ, อายุการใช้งาน (Inventory: Name, Qty, Approx Price, Age)"},
				},
			},
		},
	},
	{
		ID:    "vehicle",
		Title: "4. จัดการรถยนต์ (Vehicles)",
		SubSections: []SubSection{
			{
				Title: "4.1 กรณีรถจมน้ำ (Submerged Vehicles)",
				Tasks: []Task{
					{ID: "v4-1", Text: "ห้ามสตาร์ทรถเด็ดขาด ถ้าน้ำท่วมถึงเครื่องยนต์ (Do NOT start engine if flooded)", Warning: true},
					{ID: "v4-2", Text: "ถ่ายรูประดับน้ำเทียบกับตัวรถ และป้ายทะเบียน (Photo of water level vs car body and license plate)"},
				},
			},
			{
				Title: "4.2 หลังน้ำลด (After Water Recedes)",
				Tasks: []Task{
					{ID: "v4-3", Text: "ถ่ายรูปรอบคัน ภายใน และห้องเครื่อง (Photo exterior, interior, and engine bay)"},
					{ID: "v4-4", Text: "ติดต่อประกันภัยเพื่อลากรถ (ถ้ามีประกัน) [Contact insurance for towing (if covered)]"},
					{ID: "v4-5", Text: "ติดต่ออู่ที่เชี่ยวชาญเรื่องน้ำท่วม (Contact flood-specialist mechanics)"},
					{ID: "v4-6", Text: "เก็บใบเสร็จค่ารถยกและค่าซ่อมทุกใบ (Keep all towing and repair receipts)"},
				},
			},
		},
	},
	{
		ID:    "documents",
		Title: "5. ประกันและเยียวยา (Claims & Aid)",
		SubSections: []SubSection{
			{
				Title: "5.1 เช็กสิทธิ์ (Check Rights/Eligibility)",
				Tasks: []Task{
					{ID: "d5-1", Text: "ตรวจสอบกรมธรรม์ประกันบ้าน/รถ/อัคคีภัย (คุ้มครองภัยธรรมชาติไหม) [Check home/car/fire policies (natural disaster coverage?)]"},
					{ID: "d5-2", Text: "ติดตามข่าวสารเงินเยียวยาจากภาครัฐ/ท้องถิ่น (Follow govt/local aid announcements)"},
				},
			},
			{
				Title: "5.2 เตรียมเอกสาร (Prepare Documents)",
				Tasks: []Task{
					{ID: "d5-3", Text: "เตรียมบัตรประชาชน (ตัวจริง + สำเนา/รูปถ่าย) [ID Card (Original + Copy/Photo)]"},
					{ID: "d5-4", Text: "ทะเบียนบ้าน (ถ้ามี) [House Registration (if available)]"},
					{ID: "d5-5", Text: "รวบรวมรูปถ่ายความเสียหายทั้งหมด (Compile all damage photos)"},
					{ID: "d5-6", Text: "กรอกแบบฟอร์มบันทึกเหตุการณ์และรายการทรัพย์สิน (Fill event log & asset inventory forms)"},
				},
			},
		},
	},
	{
		ID:    "health",
		Title: "6. สุขภาพกายและใจ (Health & Wellbeing)",
		SubSections: []SubSection{
			{
				Title: "6.1 สุขภาพกาย (Physical Health)",
				Tasks: []Task{
					{ID: "h6-1", Text: "สวมรองเท้าบูท/ถุงมือทุกครั้งที่ลุยโคลน (Wear boots/gloves in mud)"},
					{ID: "h6-2", Text: "ล้างมือ-เท้าด้วยสบู่หลังสัมผัสน้ำสกปรก (Wash hands/feet with soap after contact with dirty water)"},
					{ID: "h6-3", Text: "สังเกตอาการ: ไข้, แผลอักเสบ, ตาแดง - ให้รีบพบแพทย์ (Watch for: Fever, infection, pink eye - see doctor immediately)"},
				},
			},
			{
				Title: "6.2 สุขภาพจิต (Mental Health)",
				Tasks: []Task{
					{ID: "h6-4", Text: "ยอมรับความรู้สึกเครียด/ท้อว่าเป็นเรื่องปกติ (Accept that stress/discouragement is normal)"},
					{ID: "h6-5", Text: "พูดคุยระบายกับคนในครอบครัวหรือเพื่อน (Talk to family/friends)"},
					{ID: "h6-6", Text: "หากเครียดมาก นอนไม่หลับ โทรสายด่วนสุขภาพจิต 1323 (If stressed/insomniac, call Mental Health Hotline 1323)"},
				},
			},
		},
	},
	{
		ID:    "planning",
		Title: "7. วางแผนฟื้นฟู (Recovery Plan)",
		SubSections: []SubSection{
			{
				Title: "7.1 ระยะสั้น 1-7 วัน (Short Term)",
				Tasks: []Task{
					{ID: "p7-1", Text: "ตรวจความปลอดภัยและเก็บหลักฐานให้ครบ (Check safety & complete evidence collection)"},
					{ID: "p7-2", Text: "ติดต่อขอรับความช่วยเหลือเบื้องต้น (Request initial aid)"},
				},
			},
			{
				Title: "7.2 ระยะกลาง 1-4 สัปดาห์ (Medium Term)",
				Tasks: []Task{
					{ID: "p7-3", Text: "ทำความสะอาดใหญ่ ฆ่าเชื้อ ตากบ้านให้แห้ง (Big clean, disinfect, dry out house)"},
					{ID: "p7-4", Text: "ติดตามผลการเคลมประกันและเงินเยียวยา (Follow up on claims/aid)"},
				},
			},
			{
				Title: "7.3 ระยะยาว 1-12 เดือน (Long Term)",
				Tasks: []Task{
					{ID: "p7-5", Text: "ซ่อมแซมโครงสร้างถาวร (Permanent structural repairs)"},
					{ID: "p7-6", Text: "วางแผนป้องกันใหม่: ยกของสูง, ปรับทางน้ำ (Prevention plan: Raise assets, adjust drainage)"},
				},
			},
		},
	},
	{
		ID:    "financial",
		Title: "8. ความมั่นคงทางการเงิน (Financial Security)",
		SubSections: []SubSection{
			{
				Title: "8.1 สำรวจสถานะการเงิน (Financial Status Check)",
				Tasks: []Task{
					{ID: "f8-1", Text: "รู้ยอดหนี้รวม และค่างวดต่อเดือน (Know total debt & monthly installments)"},
					{ID: "f8-2", Text: "ระบุรายชื่อผู้ที่พึ่งพารายได้เรา (Identify dependents)"},
					{ID: "f8-3", Text: "รวบรวมข้อมูลประกันและสวัสดิการเดิมที่มีทั้งหมด (Gather all existing insurance/welfare info)"},
				},
			},
			{
				Title: "8.2 วางแผนความคุ้มครอง (Coverage Planning)",
				Tasks: []Task{
					{ID: "f8-4", Text: "ตั้งเป้าวงเงินคุ้มครองชีวิตขั้นต่ำ (หนี้สิน + ค่าใช้จ่ายครอบครัว) [Set minimum life coverage goal (Debt + Family expenses)]"},
					{ID: "f8-5", Text: "เลือกแบบประกันหลักที่เหมาะสม (เน้นความคุ้มครองสูงหากงบจำกัด) [Choose suitable main insurance (High coverage if budget limited)]"},
					{ID: "f8-6", Text: "ระบุชื่อผู้รับผลประโยชน์ให้ชัดเจนและเป็นปัจจุบัน (Specify clear/current beneficiaries)"},
				},
			},
			{
				Title: "8.3 สื่อสารและต่อยอด (Communicate & Build)",
				Tasks: []Task{
					{ID: "f8-7", Text: "ทำ \"แผนที่ประกันชีวิต\" สรุปข้อมูลสำคัญไว้ในแผ่นเดียวให้คนในบ้านรู้ (Create \"Insurance Map\" summary for family)"},
					{ID: "f8-8", Text: "วางแผนทยอยเพิ่มเงินออมหรือประกันเมื่อการเงินเริ่มฟื้นตัว (Plan to increase savings/insurance as finances recover)"},
				},
			},
		},
	},
}
