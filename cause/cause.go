// Package cause decodes the Xtensa EXCCAUSE special register.
package cause

import (
	"iter"
)

// Cause is a decoded Xtensa exception cause.
type Cause uint32

//go:generate go tool stringer -linecomment -type=Cause
const (
	ILLEGAL_INSTRUCTION               = Cause(0)  // IllegalInstruction
	SYSCALL                           = Cause(1)  // Syscall
	INSTR_FETCH_ERROR                 = Cause(2)  // InstrFetchError
	LOAD_STORE_ERROR                  = Cause(3)  // LoadStoreError
	LEVEL1_INTERRUPT                  = Cause(4)  // LevelOneInterrupt
	ALLOCA                            = Cause(5)  // Alloca
	DIVIDE_BY_ZERO                    = Cause(6)  // DivideByZero
	NEXT_PC_VALUE_ILLEGAL             = Cause(7)  // NextPCValueIllegal
	PRIVILEGED_INSTRUCTION            = Cause(8)  // PrivilegedInstruction
	UNALIGNED_LOAD_OR_STORE           = Cause(9)  // UnalignedLoadOrStore
	EXTERNAL_REGISTER_PRIVILEGE_ERROR = Cause(10) // ExternalRegisterPrivilegeError
	EXCLUSIVE_ERROR                   = Cause(11) // ExclusiveError
	INSTR_DATA_ERROR                  = Cause(12) // InstrDataError
	LOAD_STORE_DATA_ERROR             = Cause(13) // LoadStoreDataError
	INSTR_ADDR_ERROR                  = Cause(14) // InstrAddrError
	LOAD_STORE_ADDR_ERROR             = Cause(15) // LoadStoreAddrError
	ITLB_MISS                         = Cause(16) // ItlbMiss
	ITLB_MULTIHIT                     = Cause(17) // ItlbMultiHit
	INSTR_RING                        = Cause(18) // InstrRing
	RESERVED_19                       = Cause(19) // Reserved19
	INSTR_PROHIBITED                  = Cause(20) // InstrProhibited
	RESERVED_21                       = Cause(21) // Reserved21
	RESERVED_22                       = Cause(22) // Reserved22
	RESERVED_23                       = Cause(23) // Reserved23
	DTLB_MISS                         = Cause(24) // DtlbMiss
	DTLB_MULTIHIT                     = Cause(25) // DtlbMultiHit
	LOAD_STORE_RING                   = Cause(26) // LoadStoreRing
	RESERVED_27                       = Cause(27) // Reserved27
	LOAD_PROHIBITED                   = Cause(28) // LoadProhibited
	STORE_PROHIBITED                  = Cause(29) // StoreProhibited
	RESERVED_30                       = Cause(30) // Reserved30
	RESERVED_31                       = Cause(31) // Reserved31
	CP0_DISABLED                      = Cause(32) // Cp0Disabled
	CP1_DISABLED                      = Cause(33) // Cp1Disabled
	CP2_DISABLED                      = Cause(34) // Cp2Disabled
	CP3_DISABLED                      = Cause(35) // Cp3Disabled
	CP4_DISABLED                      = Cause(36) // Cp4Disabled
	CP5_DISABLED                      = Cause(37) // Cp5Disabled
	CP6_DISABLED                      = Cause(38) // Cp6Disabled
	CP7_DISABLED                      = Cause(39) // Cp7Disabled

	NONE = Cause(255) // None
)

// CAUSE_COUNT is the number of architecture defined cause codes.
const CAUSE_COUNT = 40

var descriptions = [CAUSE_COUNT]string{
	ILLEGAL_INSTRUCTION:               "Illegal Instruction",
	SYSCALL:                           "System Call (Syscall Instruction)",
	INSTR_FETCH_ERROR:                 "Instruction Fetch Error",
	LOAD_STORE_ERROR:                  "Load Store Error",
	LEVEL1_INTERRUPT:                  "Level 1 Interrupt",
	ALLOCA:                            "Stack Extension Assist (movsp Instruction) For Alloca",
	DIVIDE_BY_ZERO:                    "Integer Divide By Zero",
	NEXT_PC_VALUE_ILLEGAL:             "Use Of Failed Speculative Access (Not Implemented)",
	PRIVILEGED_INSTRUCTION:            "Privileged Instruction",
	UNALIGNED_LOAD_OR_STORE:           "Unaligned Load Or Store",
	EXTERNAL_REGISTER_PRIVILEGE_ERROR: "Reserved",
	EXCLUSIVE_ERROR:                   "Reserved",
	INSTR_DATA_ERROR:                  "Pif Data Error On Instruction Fetch (Rb-200x And Later)",
	LOAD_STORE_DATA_ERROR:             "Pif Data Error On Load Or Store (Rb-200x And Later)",
	INSTR_ADDR_ERROR:                  "Pif Address Error On Instruction Fetch (Rb-200x And Later)",
	LOAD_STORE_ADDR_ERROR:             "Pif Address Error On Load Or Store (Rb-200x And Later)",
	ITLB_MISS:                         "Itlb Miss (No Itlb Entry Matches, Hw Refill Also Missed)",
	ITLB_MULTIHIT:                     "Itlb Multihit (Multiple Itlb Entries Match)",
	INSTR_RING:                        "Ring Privilege Violation On Instruction Fetch",
	RESERVED_19:                       "Size Restriction On Ifetch (Not Implemented)",
	INSTR_PROHIBITED:                  "Cache Attribute Does Not Allow Instruction Fetch",
	RESERVED_21:                       "Reserved",
	RESERVED_22:                       "Reserved",
	RESERVED_23:                       "Reserved",
	DTLB_MISS:                         "Dtlb Miss (No Dtlb Entry Matches, Hw Refill Also Missed)",
	DTLB_MULTIHIT:                     "Dtlb Multihit (Multiple Dtlb Entries Match)",
	LOAD_STORE_RING:                   "Ring Privilege Violation On Load Or Store",
	RESERVED_27:                       "Size Restriction On Load/Store (Not Implemented)",
	LOAD_PROHIBITED:                   "Cache Attribute Does Not Allow Load",
	STORE_PROHIBITED:                  "Cache Attribute Does Not Allow Store",
	RESERVED_30:                       "Reserved",
	RESERVED_31:                       "Reserved",
	CP0_DISABLED:                      "Access To Coprocessor 0 When Disabled",
	CP1_DISABLED:                      "Access To Coprocessor 1 When Disabled",
	CP2_DISABLED:                      "Access To Coprocessor 2 When Disabled",
	CP3_DISABLED:                      "Access To Coprocessor 3 When Disabled",
	CP4_DISABLED:                      "Access To Coprocessor 4 When Disabled",
	CP5_DISABLED:                      "Access To Coprocessor 5 When Disabled",
	CP6_DISABLED:                      "Access To Coprocessor 6 When Disabled",
	CP7_DISABLED:                      "Access To Coprocessor 7 When Disabled",
}

// Decode the raw EXCCAUSE value.
// Codes outside of the architecture defined range decode to NONE.
func Decode(code uint32) Cause {
	if code < CAUSE_COUNT {
		return Cause(code)
	}

	return NONE
}

// Description returns the architecture manual's description of the cause.
func (c Cause) Description() string {
	if c < CAUSE_COUNT {
		return descriptions[c]
	}

	return "None"
}

// Reserved returns true for codes the architecture reserves.
func (c Cause) Reserved() bool {
	switch c {
	case RESERVED_19, RESERVED_21, RESERVED_22, RESERVED_23,
		RESERVED_27, RESERVED_30, RESERVED_31:
		return true
	}
	return false
}

// Coprocessor returns the coprocessor index for a CPn_DISABLED cause.
func (c Cause) Coprocessor() (index int, ok bool) {
	if c >= CP0_DISABLED && c <= CP7_DISABLED {
		return int(c - CP0_DISABLED), true
	}
	return
}

// All iterates over the architecture defined causes, in code order.
func All() iter.Seq[Cause] {
	return func(yield func(Cause) bool) {
		for code := range uint32(CAUSE_COUNT) {
			if !yield(Cause(code)) {
				return
			}
		}
	}
}
